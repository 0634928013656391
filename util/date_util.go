package util

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// EarliestDate is the default lower bound for history filters.
var EarliestDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDateOr parses a YYYY-MM-DD query value, falling back to the given
// default on any parse failure. Query dates are lenient by contract.
func ParseDateOr(value string, fallback time.Time) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return t
}
