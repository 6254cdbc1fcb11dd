package gourmet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-search/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GourmetConfig{
		BaseURL:   serverURL + "/gourmet/v1/",
		APIKey:    "test-key",
		Count:     100,
		Format:    "json",
		UserAgent: "gourmet-search-test",
		Timeout:   5 * time.Second,
	})
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/gourmet/v1/", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "福岡", q.Get("keyword"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "20", q.Get("count"))
		assert.Equal(t, "gourmet-search-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"results_available":42,"shop":[{"name":"A"}]}}`))
	}))
	defer server.Close()

	raw, err := newTestClient(server.URL).Search(context.Background(), SearchParams{Keyword: "福岡", Count: 20})
	require.NoError(t, err)

	shops := raw["results"].(map[string]any)["shop"].([]any)
	assert.Len(t, shops, 1)

	available, ok := ResultsAvailable(raw)
	assert.True(t, ok)
	assert.Equal(t, 42, available)
}

func TestClient_Search_DefaultCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("count"))
		w.Write([]byte(`{"results":{"shop":[]}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Search(context.Background(), SearchParams{Keyword: "天神"})
	assert.NoError(t, err)
}

func TestClient_Search_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "non-200 status", status: http.StatusServiceUnavailable, body: "down", wantStatus: http.StatusServiceUnavailable},
		{name: "invalid json", status: http.StatusOK, body: "<html>", wantStatus: http.StatusOK},
		{
			name:       "api error envelope",
			status:     http.StatusOK,
			body:       `{"results":{"error":[{"code":2000,"message":"APIキーまたはIPアドレスの認証エラーです"}]}}`,
			wantStatus: http.StatusOK,
			wantCode:   "2000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			raw, err := newTestClient(server.URL).Search(context.Background(), SearchParams{Keyword: "福岡"})
			assert.Nil(t, raw)

			var ferr *FetchError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tc.wantStatus, ferr.StatusCode)
			assert.Equal(t, tc.wantCode, ferr.Code)
		})
	}
}

func TestClient_Search_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	_, err := newTestClient(serverURL).Search(context.Background(), SearchParams{Keyword: "福岡"})

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 0, ferr.StatusCode)
	assert.Error(t, errors.Unwrap(ferr))
}

func TestClient_Search_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"shop":[]}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).Search(ctx, SearchParams{Keyword: "福岡"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResultsAvailable(t *testing.T) {
	n, ok := ResultsAvailable(map[string]any{"results": map[string]any{"results_available": "7"}})
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = ResultsAvailable(map[string]any{})
	assert.False(t, ok)
}
