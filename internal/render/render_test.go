package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-search/internal/pipeline"
	"gourmet-search/internal/shop"
)

var records = []shop.ShopRecord{
	{Name: "博多もつ鍋", Address: "博多区", StationName: "博多", AveragePrice: "2001～3000円", Genre: "居酒屋", URLs: "https://example.test/1", Card: "利用可"},
	{Name: "天神ラーメン", Address: "中央区", StationName: "天神", AveragePrice: "501～1000円", Genre: "not listed", URLs: "https://example.test/2", Card: "利用不可"},
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, records)

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "station_name")
	assert.Contains(t, out, "博多もつ鍋")
	assert.Contains(t, out, "https://example.test/2")
	assert.Less(t, strings.Index(out, "博多もつ鍋"), strings.Index(out, "天神ラーメン"), "rows keep input order")
	assert.Contains(t, out, "╭", "rounded style")
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil)
	assert.Contains(t, strings.ToLower(buf.String()), "average_price")
}

func TestProblems(t *testing.T) {
	var buf bytes.Buffer
	Problems(&buf, nil)
	assert.Empty(t, buf.String())

	Problems(&buf, []error{&shop.MalformedRecordError{Index: 3, Field: "budget", Reason: "is missing"}})
	assert.Contains(t, buf.String(), `shop entry 3: field "budget" is missing`)
}

func TestJSON(t *testing.T) {
	report := &pipeline.Report{
		Shops:      records,
		Available:  10,
		Fetched:    3,
		Normalized: 2,
		Matched:    2,
		Problems:   []error{errors.New("entry skipped")},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, report))

	var decoded struct {
		Shops    []shop.ShopRecord `json:"shops"`
		Fetched  int               `json:"fetched"`
		Matched  int               `json:"matched"`
		Problems []string          `json:"problems"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, records, decoded.Shops)
	assert.Equal(t, 3, decoded.Fetched)
	assert.Equal(t, 2, decoded.Matched)
	assert.Equal(t, []string{"entry skipped"}, decoded.Problems)
}
