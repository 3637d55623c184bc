package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run(`midweek anchors to monday`, func(t *testing.T) {
		wednesday := time.Date(2024, 6, 5, 15, 30, 0, 0, time.UTC)
		require.Equal(t, monday, WeekStart(wednesday))
	})

	t.Run(`monday is its own week start`, func(t *testing.T) {
		require.Equal(t, monday, WeekStart(monday.Add(23*time.Hour)))
	})

	t.Run(`sunday belongs to the week started six days earlier`, func(t *testing.T) {
		sunday := time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC)
		require.Equal(t, monday, WeekStart(sunday))
	})
}

func TestDayDate(t *testing.T) {
	weekStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run(`offsets resolve within the week`, func(t *testing.T) {
		require.Equal(t, weekStart, DayDate(weekStart, 0))
		require.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), DayDate(weekStart, 3))
		require.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), DayDate(weekStart, 6))
	})
}

func TestToDate(t *testing.T) {
	t.Run(`truncates clock time`, func(t *testing.T) {
		moment := time.Date(2024, 6, 5, 23, 59, 59, 123, time.UTC)
		require.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), ToDate(moment))
	})
}
