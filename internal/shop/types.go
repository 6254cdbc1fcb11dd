package shop

// RawSearchResult is the decoded JSON payload returned by the search API.
type RawSearchResult map[string]any

// ShopRecord is the flattened form of a single shop entry.
type ShopRecord struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	StationName  string `json:"station_name"`
	AveragePrice string `json:"average_price"`
	Genre        string `json:"genre"`
	URLs         string `json:"urls"`
	Card         string `json:"card"`
}

// SubGenre is the secondary category nested under a shop entry.
type SubGenre struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultSubGenre stands in for entries that carry no sub_genre.
var DefaultSubGenre = SubGenre{Code: "without code", Name: "not listed"}

// Batch is the outcome of a best-effort pass over many entries: the
// records that made it through and one error per entry that did not.
type Batch struct {
	Records []ShopRecord
	Skipped []error
	Total   int
}
