package daterange

import (
	"fmt"
	"time"
)

// Layout is the wire format of the dashboard date parameters.
const Layout = "2006-01-02"

// Range is an optional inclusive date interval. A nil bound means the
// filter is unbounded on that side; the zero Range filters nothing.
type Range struct {
	Start *time.Time `json:"startDate,omitempty"`
	End   *time.Time `json:"endDate,omitempty"`
}

// Parse builds a Range from raw query parameters. An empty string is
// normalized to an absent bound rather than a default date.
func Parse(start, end string) (Range, error) {
	var r Range

	if start != "" {
		t, err := time.Parse(Layout, start)
		if err != nil {
			return Range{}, fmt.Errorf("invalid startDate %q: %w", start, err)
		}
		r.Start = &t
	}

	if end != "" {
		t, err := time.Parse(Layout, end)
		if err != nil {
			return Range{}, fmt.Errorf("invalid endDate %q: %w", end, err)
		}
		r.End = &t
	}

	return r, nil
}

// ExclusiveEnd returns the upper bound shifted to the start of the next
// day, turning the inclusive end date into a strict timestamp comparison.
func (r Range) ExclusiveEnd() *time.Time {
	if r.End == nil {
		return nil
	}
	t := r.End.AddDate(0, 0, 1)

	return &t
}
