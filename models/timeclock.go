package models

type TimeClockKind string

const (
	ClockIn  TimeClockKind = "IN"
	ClockOut TimeClockKind = "OUT"
)
