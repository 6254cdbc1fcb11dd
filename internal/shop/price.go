package shop

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Both the fullwidth tilde (U+FF5E) and the wave dash (U+301C) show up in
// budget labels depending on the encoder upstream.
var (
	bandRe   = regexp.MustCompile(`^\s*([\d,]*)\s*[～〜]\s*([\d,]*)\s*$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

const currencySuffix = "円"

// PriceBand is an inclusive price range in yen.
type PriceBand struct {
	Lower int
	Upper int
}

// Contains reports whether target lies within the band, bounds included.
func (b PriceBand) Contains(target int) bool {
	return b.Lower <= target && target <= b.Upper
}

func (b PriceBand) String() string {
	return fmt.Sprintf("%d～%d%s", b.Lower, b.Upper, currencySuffix)
}

// ParsePriceBand parses a label such as "2001～3000円".
func ParsePriceBand(s string) (PriceBand, error) {
	body := strings.TrimSuffix(strings.TrimSpace(s), currencySuffix)

	m := bandRe.FindStringSubmatch(body)
	if m == nil {
		return PriceBand{}, &ParseError{Value: s, Reason: "missing wave-dash separator"}
	}

	lower, err := parseYen(m[1])
	if err != nil {
		return PriceBand{}, &ParseError{Value: s, Reason: "lower bound " + err.Error()}
	}
	upper, err := parseYen(m[2])
	if err != nil {
		return PriceBand{}, &ParseError{Value: s, Reason: "upper bound " + err.Error()}
	}
	if lower > upper {
		return PriceBand{}, &ParseError{Value: s, Reason: "lower bound exceeds upper bound"}
	}
	return PriceBand{Lower: lower, Upper: upper}, nil
}

func parseYen(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	if !digitsRe.MatchString(s) {
		return 0, errors.New("is not a number")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("is out of range")
	}
	return n, nil
}
