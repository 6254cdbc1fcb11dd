package shop

import (
	"errors"
	"fmt"
)

// ErrMissingShopList is returned when the payload has no results.shop list.
var ErrMissingShopList = errors.New("payload has no results.shop list")

// MalformedRecordError reports a shop entry missing a field that has no default.
type MalformedRecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("shop entry %d: field %q %s", e.Index, e.Field, e.Reason)
}

// ParseError reports an average_price value that is not a wave-dash price band.
type ParseError struct {
	Index  int
	Name   string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("price band %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("record %d (%s): price band %q: %s", e.Index, e.Name, e.Value, e.Reason)
}
