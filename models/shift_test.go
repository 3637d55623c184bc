package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftLabel(t *testing.T) {
	t.Run(`default times per label check`, func(t *testing.T) {
		times, isWorking := ShiftMatin.GetTimes()
		require.True(t, isWorking)
		require.Equal(t, "09:00", times.StartTime)
		require.Equal(t, "18:00", times.EndTime)

		times, isWorking = ShiftSoiree.GetTimes()
		require.True(t, isWorking)
		require.Equal(t, "18:00", times.StartTime)
		require.Equal(t, "03:00", times.EndTime)

		times, isWorking = ShiftDoublage.GetTimes()
		require.True(t, isWorking)
		require.Equal(t, "09:00", times.StartTime)
		require.Equal(t, "03:00", times.EndTime)
	})

	t.Run(`repos carries no working time`, func(t *testing.T) {
		times, isWorking := ShiftRepos.GetTimes()
		require.False(t, isWorking)
		require.Empty(t, times.StartTime)
		require.Empty(t, times.EndTime)
	})

	t.Run(`unknown label is not working`, func(t *testing.T) {
		_, isWorking := ShiftLabel("Nuit").GetTimes()
		require.False(t, isWorking)
		require.False(t, ShiftLabel("Nuit").IsValid())
	})

	t.Run(`all known labels are valid`, func(t *testing.T) {
		for _, label := range []ShiftLabel{ShiftMatin, ShiftSoiree, ShiftDoublage, ShiftRepos} {
			require.True(t, label.IsValid())
		}
	})
}

func TestDayOffset(t *testing.T) {
	t.Run(`monday based offsets check`, func(t *testing.T) {
		require.Equal(t, 0, DayOffset("monday"))
		require.Equal(t, 3, DayOffset("thursday"))
		require.Equal(t, 6, DayOffset("sunday"))
	})

	t.Run(`unknown day key check`, func(t *testing.T) {
		require.Equal(t, -1, DayOffset("lundi"))
		require.Equal(t, -1, DayOffset(""))
	})
}
