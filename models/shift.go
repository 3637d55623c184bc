package models

type ShiftLabel string

const (
	ShiftMatin    ShiftLabel = "Matin"
	ShiftSoiree   ShiftLabel = "Soirée"
	ShiftDoublage ShiftLabel = "Doublage"
	ShiftRepos    ShiftLabel = "Repos"
)

type ShiftTimes struct {
	StartTime string
	EndTime   string
}

// Single source of truth for default shift clock times.
// Soirée and Doublage end past midnight on the next calendar day.
var shiftDefaultTimes = map[ShiftLabel]ShiftTimes{
	ShiftMatin:    {StartTime: "09:00", EndTime: "18:00"},
	ShiftSoiree:   {StartTime: "18:00", EndTime: "03:00"},
	ShiftDoublage: {StartTime: "09:00", EndTime: "03:00"},
}

// GetTimes returns the default clock times for the label.
// Repos and unknown labels carry no working time.
func (s ShiftLabel) GetTimes() (times ShiftTimes, isWorking bool) {
	times, isWorking = shiftDefaultTimes[s]
	return times, isWorking
}

func (s ShiftLabel) IsValid() bool {
	switch s {
	case ShiftMatin, ShiftSoiree, ShiftDoublage, ShiftRepos:
		return true
	}
	return false
}

// WeekDays lists day keys in proposal payload order, Monday first.
var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayOffset returns the day offset from Monday, -1 for an unknown key.
func DayOffset(day string) int {
	for idx, name := range WeekDays {
		if name == day {
			return idx
		}
	}
	return -1
}
