// Package ingest turns donation records from files and command-line
// arguments into model devices.
package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedRecord indicates a row or spec that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed donation record")
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("missing required column")
)

// dateLayouts are tried in order when parsing donation dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate parses a donation date in one of the accepted layouts. Dates
// without a zone are taken to be in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrMalformedRecord, s)
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: weight %q is not a number", ErrMalformedRecord, s)
	}
	if w <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %v", ErrMalformedRecord, w)
	}
	return w, nil
}
