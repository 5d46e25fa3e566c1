package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		input   string
		want    Recurrence
		wantErr bool
	}{
		{"", RecurrenceNone, false},
		{"none", RecurrenceNone, false},
		{"None", RecurrenceNone, false},
		{"NONE", RecurrenceNone, false},
		{"daily", RecurrenceDaily, false},
		{"DAILY", RecurrenceDaily, false},
		{"Weekly", RecurrenceWeekly, false},
		{"monthly", RecurrenceMonthly, false},
		{"yeaRLY", RecurrenceYearly, false},
		{" daily ", RecurrenceDaily, false},
		{"hourly", RecurrenceNone, true},
		{"everyday", RecurrenceNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRecurrence(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrenceCap(t *testing.T) {
	assert.Equal(t, 365, RecurrenceDaily.Cap())
	assert.Equal(t, 52, RecurrenceWeekly.Cap())
	assert.Equal(t, 12, RecurrenceMonthly.Cap())
	assert.Equal(t, 5, RecurrenceYearly.Cap())
	assert.Equal(t, 1, RecurrenceNone.Cap())
	assert.Equal(t, 1, Recurrence("bogus").Cap())
}

func TestRecurrenceAdvance(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC), RecurrenceDaily.Advance(base, 3))
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), RecurrenceWeekly.Advance(base, 2))
	assert.Equal(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), RecurrenceMonthly.Advance(base, 3))
	assert.Equal(t, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), RecurrenceYearly.Advance(base, 2))

	assert.Equal(t, base, RecurrenceNone.Advance(base, 5))
	assert.Equal(t, base, RecurrenceDaily.Advance(base, 0))
}

func TestRecurrenceAdvanceMonthRollover(t *testing.T) {
	// Daily advancement crosses month boundaries.
	jan31 := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), RecurrenceDaily.Advance(jan31, 1))

	// Monthly advancement from a day the target month lacks normalizes
	// forward: Jan 31 + 1 month = Feb 31 = Mar 2 in a leap year.
	assert.Equal(t, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), RecurrenceMonthly.Advance(jan31, 1))
	assert.Equal(t, time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC), RecurrenceMonthly.Advance(jan31, 2))

	// Feb 29 + 1 year normalizes to Mar 1.
	feb29 := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), RecurrenceYearly.Advance(feb29, 1))
}
