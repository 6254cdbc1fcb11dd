// Package render writes shop records for humans and machines.
package render

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"gourmet-search/internal/pipeline"
	"gourmet-search/internal/shop"
)

var header = table.Row{"name", "address", "station_name", "average_price", "genre", "urls", "card"}

// NewTable returns a rounded table writer mirrored to w.
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Table renders shops as one row per record, in order.
func Table(w io.Writer, shops []shop.ShopRecord) {
	t := NewTable(w)
	t.AppendHeader(header)
	for _, s := range shops {
		t.AppendRow(table.Row{s.Name, s.Address, s.StationName, s.AveragePrice, s.Genre, s.URLs, s.Card})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "total", len(shops)})
	t.Render()
}

// Problems renders the entries a run had to skip. Nothing is written when
// there are none.
func Problems(w io.Writer, problems []error) {
	if len(problems) == 0 {
		return
	}
	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "skipped entry"})
	for i, p := range problems {
		t.AppendRow(table.Row{i + 1, p.Error()})
	}
	t.Render()
}

type jsonReport struct {
	*pipeline.Report
	Problems []string `json:"problems"`
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r *pipeline.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Report: r, Problems: r.ProblemMessages()})
}
