package gourmet

import (
	"fmt"
	"strconv"

	"gourmet-search/internal/shop"
)

// apiError extracts the first entry of results.error, which the API sends
// with a 200 status when the key or parameters are rejected.
func apiError(raw shop.RawSearchResult) *FetchError {
	results, ok := raw["results"].(map[string]any)
	if !ok {
		return nil
	}
	list, ok := results["error"].([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	ferr := &FetchError{Code: "unknown", Message: "unspecified error"}
	first, ok := list[0].(map[string]any)
	if !ok {
		return ferr
	}
	if code, ok := first["code"]; ok && code != nil {
		ferr.Code = fmt.Sprint(code)
	}
	if msg, ok := first["message"].(string); ok {
		ferr.Message = msg
	}
	return ferr
}

// ResultsAvailable returns results.results_available, the total number of
// matches upstream regardless of how many were returned.
func ResultsAvailable(raw shop.RawSearchResult) (int, bool) {
	results, ok := raw["results"].(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := results["results_available"].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}
