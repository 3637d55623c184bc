package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// WeekStart returns the Monday of the week containing t, truncated to a date.
func WeekStart(t time.Time) time.Time {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		// Sunday belongs to the week that started six days earlier
		offset = 6
	}
	return date.AddDate(0, 0, -offset)
}

// DayDate resolves a Monday-based day offset within the week of weekStart.
func DayDate(weekStart time.Time, dayOffset int) time.Time {
	return weekStart.AddDate(0, 0, dayOffset)
}

func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
