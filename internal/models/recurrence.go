package models

import (
	"fmt"
	"strings"
	"time"
)

// Recurrence is the repeat rule of a calendar event. The zero value means
// the event does not repeat.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// ParseRecurrence normalizes a client-supplied recurrence string. Matching
// is case-insensitive; both the empty string and "none" map to
// RecurrenceNone. Anything else is rejected.
func ParseRecurrence(s string) (Recurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RecurrenceNone, nil
	case "daily":
		return RecurrenceDaily, nil
	case "weekly":
		return RecurrenceWeekly, nil
	case "monthly":
		return RecurrenceMonthly, nil
	case "yearly":
		return RecurrenceYearly, nil
	}
	return RecurrenceNone, fmt.Errorf("invalid recurrence %q", s)
}

func (r Recurrence) IsRecurring() bool {
	return r != RecurrenceNone
}

// Cap is the fixed number of occurrences materialized for a series of this
// recurrence: one year of days, one year of weeks, one year of months, five
// years. Unknown values fall back to a single occurrence.
func (r Recurrence) Cap() int {
	switch r {
	case RecurrenceDaily:
		return 365
	case RecurrenceWeekly:
		return 52
	case RecurrenceMonthly:
		return 12
	case RecurrenceYearly:
		return 5
	default:
		return 1
	}
}

// Advance returns t moved forward by n periods of the recurrence. Monthly
// and yearly steps use calendar arithmetic, so day-of-month overflow
// normalizes the way time.AddDate does (Jan 31 + 1 month lands in early
// March).
func (r Recurrence) Advance(t time.Time, n int) time.Time {
	switch r {
	case RecurrenceDaily:
		return t.AddDate(0, 0, n)
	case RecurrenceWeekly:
		return t.AddDate(0, 0, 7*n)
	case RecurrenceMonthly:
		return t.AddDate(0, n, 0)
	case RecurrenceYearly:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}
