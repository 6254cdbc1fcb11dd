package shop

import "strings"

// Normalize flattens every entry of results.shop into a ShopRecord.
//
// Entries missing a field without a default are skipped and reported in
// Batch.Skipped as *MalformedRecordError; the rest keep their input order.
// A payload without a results.shop list fails with ErrMissingShopList.
func Normalize(raw RawSearchResult) (Batch, error) {
	v, ok := lookup(raw, "results", "shop")
	if !ok {
		return Batch{}, ErrMissingShopList
	}
	entries, ok := v.([]any)
	if !ok {
		return Batch{}, ErrMissingShopList
	}

	batch := Batch{
		Records: make([]ShopRecord, 0, len(entries)),
		Total:   len(entries),
	}
	for i, entry := range entries {
		record, err := normalizeEntry(i, entry)
		if err != nil {
			batch.Skipped = append(batch.Skipped, err)
			continue
		}
		batch.Records = append(batch.Records, record)
	}
	return batch, nil
}

func normalizeEntry(index int, entry any) (ShopRecord, error) {
	m, ok := asMap(entry)
	if !ok {
		return ShopRecord{}, &MalformedRecordError{Index: index, Field: "shop", Reason: "is not an object"}
	}

	e := entryReader{index: index, m: m}
	record := ShopRecord{
		Name:         e.str("name"),
		Address:      e.str("address"),
		StationName:  e.str("station_name"),
		AveragePrice: e.str("budget", "name"),
		Genre:        e.subGenre().Name,
		URLs:         e.str("urls", "pc"),
		Card:         e.str("card"),
	}
	if e.err != nil {
		return ShopRecord{}, e.err
	}
	return record, nil
}

// entryReader extracts string fields from one shop entry and keeps the
// first failure it runs into.
type entryReader struct {
	index int
	m     map[string]any
	err   error
}

func (e *entryReader) str(path ...string) string {
	if e.err != nil {
		return ""
	}

	// Name the shallowest missing segment so "budget" absent and
	// "budget.name" absent are told apart.
	for depth := 1; depth <= len(path); depth++ {
		v, ok := lookup(e.m, path[:depth]...)
		if !ok || v == nil {
			e.fail(path[:depth], "is missing")
			return ""
		}
	}

	s, ok := lookupString(e.m, path...)
	if !ok {
		e.fail(path, "is not a string")
		return ""
	}
	return s
}

func (e *entryReader) subGenre() SubGenre {
	if e.err != nil {
		return SubGenre{}
	}
	if v, ok := lookup(e.m, "sub_genre"); !ok || v == nil {
		return DefaultSubGenre
	}
	return SubGenre{
		Code: e.optional("sub_genre", "code"),
		Name: e.str("sub_genre", "name"),
	}
}

func (e *entryReader) optional(path ...string) string {
	s, _ := lookupString(e.m, path...)
	return s
}

func (e *entryReader) fail(path []string, reason string) {
	e.err = &MalformedRecordError{
		Index:  e.index,
		Field:  strings.Join(path, "."),
		Reason: reason,
	}
}
