// Package pipeline composes the fetch, normalize and filter steps of a shop search.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gourmet-search/internal/gourmet"
	"gourmet-search/internal/shop"
)

// ErrEmptyKeyword is returned when a query carries no search keyword.
var ErrEmptyKeyword = errors.New("keyword is required")

// Fetcher performs a single search against the upstream API.
type Fetcher interface {
	Search(ctx context.Context, p gourmet.SearchParams) (shop.RawSearchResult, error)
}

// Query describes one search. A nil Price or an empty Station disables
// the corresponding filter.
type Query struct {
	Keyword string
	Count   int
	Price   *int
	Station string
}

// Report is the aggregate outcome of a run.
type Report struct {
	Shops      []shop.ShopRecord `json:"shops"`
	Available  int               `json:"available"`
	Fetched    int               `json:"fetched"`
	Normalized int               `json:"normalized"`
	Matched    int               `json:"matched"`
	Problems   []error           `json:"-"`
}

// ProblemMessages renders Problems for transports that cannot carry errors.
func (r *Report) ProblemMessages() []string {
	out := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		out = append(out, p.Error())
	}
	return out
}

// Run fetches shops for q.Keyword, normalizes them and applies the filters
// requested by q. Entries dropped along the way are reported, not fatal.
func Run(ctx context.Context, f Fetcher, q Query) (*Report, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	raw, err := f.Search(ctx, gourmet.SearchParams{Keyword: keyword, Count: q.Count})
	if err != nil {
		return nil, err
	}

	normalized, err := shop.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize search result: %w", err)
	}

	report := &Report{
		Fetched:    normalized.Total,
		Normalized: len(normalized.Records),
	}
	if available, ok := gourmet.ResultsAvailable(raw); ok {
		report.Available = available
	} else {
		report.Available = normalized.Total
	}
	report.addProblems("normalize", normalized.Skipped)

	shops := normalized.Records
	if q.Price != nil {
		priced := shop.FilterByPrice(shops, *q.Price)
		report.addProblems("price filter", priced.Skipped)
		shops = priced.Records
	}
	if q.Station != "" {
		shops = shop.FilterByStation(shops, q.Station)
	}

	report.Shops = shops
	report.Matched = len(shops)

	log.Printf("Search %q finished: fetched=%d normalized=%d matched=%d problems=%d",
		keyword, report.Fetched, report.Normalized, report.Matched, len(report.Problems))
	return report, nil
}

func (r *Report) addProblems(stage string, errs []error) {
	for _, err := range errs {
		log.Printf("Warning: %s skipped an entry: %v", stage, err)
		r.Problems = append(r.Problems, err)
	}
}
