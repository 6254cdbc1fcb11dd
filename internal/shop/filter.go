package shop

import (
	"errors"
	"strings"
)

// FilterByPrice keeps the records whose average_price band contains target.
// Records with an unparsable band are left out and reported as *ParseError.
func FilterByPrice(records []ShopRecord, target int) Batch {
	batch := Batch{
		Records: make([]ShopRecord, 0, len(records)),
		Total:   len(records),
	}
	for i, r := range records {
		band, err := ParsePriceBand(r.AveragePrice)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Index = i
				perr.Name = r.Name
			}
			batch.Skipped = append(batch.Skipped, err)
			continue
		}
		if band.Contains(target) {
			batch.Records = append(batch.Records, r)
		}
	}
	return batch
}

// FilterByStation keeps the records whose station name occurs inside query.
// The containment runs from the record into the query, so "天神" matches the
// query "博多・天神" and an empty station name matches any query.
func FilterByStation(records []ShopRecord, query string) []ShopRecord {
	out := make([]ShopRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(query, r.StationName) {
			out = append(out, r)
		}
	}
	return out
}
