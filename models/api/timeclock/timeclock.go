package timeclockapimodels

import (
	dbmodels "resto-hr-backend/models/db"
	"time"
)

const dateFormat = "2006-01-02"

type TimeClockEntryView struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Kind         string `json:"kind"`
	ClockedAt    string `json:"clocked_at"`
}

func TimeClockEntryConvert(rec dbmodels.TimeClockEntry) TimeClockEntryView {
	view := TimeClockEntryView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(dateFormat),
		Kind:       string(rec.Kind),
		ClockedAt:  rec.ClockedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}

type TimeClockFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
}

// WorkedHours is the per-employee aggregation fed into the payroll export.
type WorkedHours struct {
	EmployeeID   string
	EmployeeName string
	Hours        float64
}
