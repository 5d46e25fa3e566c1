package helpers

import (
	"fmt"
	"time"
)

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseEventTime accepts RFC3339 timestamps as well as the naive local
// values the calendar frontend sends ("2024-01-01T09:00"). Naive values
// keep their wall-clock reading; no timezone conversion is applied.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
