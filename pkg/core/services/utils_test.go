package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowDates_DefaultWindow(t *testing.T) {
	// Wednesday 2025-01-08 anchors at Sunday 2025-01-05
	start := time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)

	dates, err := WindowDates(start, 28, "")
	require.NoError(t, err)

	require.Len(t, dates, 28)
	assert.Equal(t, "2025-01-05", dates[0])
	assert.Equal(t, "2025-02-01", dates[27])
}

func TestWindowDates_StartOnSunday(t *testing.T) {
	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	dates, err := WindowDates(start, 7, "")
	require.NoError(t, err)

	assert.Equal(t, "2025-01-05", dates[0], "a Sunday start anchors on itself")
	assert.Equal(t, "2025-01-11", dates[6])
}

func TestWindowDates_CustomRule(t *testing.T) {
	start := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	dates, err := WindowDates(start, 28, "FREQ=WEEKLY;COUNT=3")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-05", "2025-01-12", "2025-01-19"}, dates)
}

func TestWindowDates_InvalidRule(t *testing.T) {
	_, err := WindowDates(time.Now(), 28, "FREQ=SOMETIMES")
	assert.Error(t, err)
}

func TestPriorSunday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midweek", time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC), "2025-01-05"},
		{"saturday", time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), "2025-01-05"},
		{"sunday stays", time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC), "2025-01-05"},
		{"monday", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), "2025-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, priorSunday(tt.in).Format("2006-01-02"))
		})
	}
}

func TestKeepLeaves(t *testing.T) {
	assert.Equal(t, []string{"AL", "PH"}, keepLeaves([]string{"AL", "7-16", "PH", "0930-1830"}))
	assert.Nil(t, keepLeaves([]string{"7-16", "15-24"}))
	assert.Nil(t, keepLeaves(nil))
}
