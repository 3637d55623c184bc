package timeclockhandler

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func entry(employeeID, name string, kind models.TimeClockKind, at time.Time) dbmodels.TimeClockEntry {
	rec := dbmodels.TimeClockEntry{
		EmployeeID: employeeID,
		Date:       time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location()),
		Kind:       kind,
		ClockedAt:  at,
	}
	if name != "" {
		rec.Employee = &dbmodels.Employee{FirstName: name}
	}
	return rec
}

func TestAggregateWorkedHours(t *testing.T) {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run(`in and out pairs sum up`, func(t *testing.T) {
		result := AggregateWorkedHours([]dbmodels.TimeClockEntry{
			entry("emp-1", "Jean", models.ClockIn, day.Add(9*time.Hour)),
			entry("emp-1", "Jean", models.ClockOut, day.Add(13*time.Hour)),
			entry("emp-1", "Jean", models.ClockIn, day.Add(14*time.Hour)),
			entry("emp-1", "Jean", models.ClockOut, day.Add(18*time.Hour)),
		})
		require.Len(t, result, 1)
		require.Equal(t, "emp-1", result[0].EmployeeID)
		require.InDelta(t, 8.0, result[0].Hours, 0.001)
	})

	t.Run(`dangling in contributes nothing`, func(t *testing.T) {
		result := AggregateWorkedHours([]dbmodels.TimeClockEntry{
			entry("emp-1", "Jean", models.ClockIn, day.Add(9*time.Hour)),
			entry("emp-1", "Jean", models.ClockOut, day.Add(12*time.Hour)),
			entry("emp-1", "Jean", models.ClockIn, day.Add(13*time.Hour)),
		})
		require.Len(t, result, 1)
		require.InDelta(t, 3.0, result[0].Hours, 0.001)
	})

	t.Run(`out without an in is ignored`, func(t *testing.T) {
		result := AggregateWorkedHours([]dbmodels.TimeClockEntry{
			entry("emp-1", "Jean", models.ClockOut, day.Add(9*time.Hour)),
		})
		require.Len(t, result, 1)
		require.Zero(t, result[0].Hours)
	})

	t.Run(`employees are split and sorted by name`, func(t *testing.T) {
		result := AggregateWorkedHours([]dbmodels.TimeClockEntry{
			entry("emp-2", "Zoé", models.ClockIn, day.Add(9*time.Hour)),
			entry("emp-1", "Anne", models.ClockIn, day.Add(9*time.Hour)),
			entry("emp-2", "Zoé", models.ClockOut, day.Add(17*time.Hour)),
			entry("emp-1", "Anne", models.ClockOut, day.Add(15*time.Hour)),
		})
		require.Len(t, result, 2)
		require.Equal(t, "emp-1", result[0].EmployeeID)
		require.InDelta(t, 6.0, result[0].Hours, 0.001)
		require.Equal(t, "emp-2", result[1].EmployeeID)
		require.InDelta(t, 8.0, result[1].Hours, 0.001)
	})

	t.Run(`no entries yields an empty list`, func(t *testing.T) {
		require.Empty(t, AggregateWorkedHours(nil))
	})
}
