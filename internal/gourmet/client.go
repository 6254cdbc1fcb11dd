package gourmet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"gourmet-search/config"
	"gourmet-search/internal/shop"
)

// SearchParams are the per-call parameters of a shop search.
type SearchParams struct {
	Keyword string
	Count   int
}

// Client issues search requests against the Gourmet Search API.
type Client struct {
	cfg    config.GourmetConfig
	client *http.Client
}

// NewClient creates a client for the configured endpoint.
func NewClient(cfg config.GourmetConfig) *Client {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// Search performs a single GET against the API and returns the decoded payload.
func (c *Client) Search(ctx context.Context, p SearchParams) (shop.RawSearchResult, error) {
	req, err := c.newRequest(ctx, p)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("http request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var raw shop.RawSearchResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to unmarshal api response: %w", err)}
	}

	if ferr := apiError(raw); ferr != nil {
		ferr.StatusCode = resp.StatusCode
		return nil, ferr
	}

	return raw, nil
}

func (c *Client) newRequest(ctx context.Context, p SearchParams) (*http.Request, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", c.cfg.BaseURL, err)
	}

	count := p.Count
	if count <= 0 {
		count = c.cfg.Count
	}

	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	q.Set("keyword", p.Keyword)
	q.Set("format", c.cfg.Format)
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	return req, nil
}
