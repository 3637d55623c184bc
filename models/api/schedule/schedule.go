package scheduleapimodels

import (
	"encoding/json"
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

const DateFormat = "2006-01-02"

type WorkScheduleView struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	ShiftType    string  `json:"shift_type"`
	JobPosition  *string `json:"job_position"`
	IsWorking    bool    `json:"is_working"`
	CreatedAt    string  `json:"created_at"`
}

func WorkScheduleConvert(rec dbmodels.WorkSchedule) WorkScheduleView {
	view := WorkScheduleView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format(DateFormat),
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		ShiftType:   string(rec.ShiftType),
		JobPosition: rec.JobPosition,
		IsWorking:   rec.IsWorking,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}

func ManagerWorkScheduleConvert(rec dbmodels.ManagerWorkSchedule) WorkScheduleView {
	view := WorkScheduleView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format(DateFormat),
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		ShiftType:   string(rec.ShiftType),
		JobPosition: rec.JobPosition,
		IsWorking:   rec.IsWorking,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	return view
}

type ScheduleFilter struct {
	EmployeeID string
	Date       string
}

type WorkScheduleData struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	ShiftType   string  `json:"shift_type"`
	JobPosition *string `json:"job_position"`
	IsWorking   bool    `json:"is_working"`
}

func (d WorkScheduleData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("employee is not specified")
	}
	if _, err := time.Parse(DateFormat, d.Date); err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}
	if d.ShiftType != "" && !models.ShiftLabel(d.ShiftType).IsValid() {
		return errors.Errorf("unknown shift label: %v", d.ShiftType)
	}
	return nil
}

func (d WorkScheduleData) GetDate() time.Time {
	date, _ := time.Parse(DateFormat, d.Date)
	return date
}

// WeekData is a proposal payload mapping day keys (monday..sunday) to shift
// labels. Absent or empty days mean no change that day.
type WeekData map[string]models.ShiftLabel

func ParseWeekData(raw string) (WeekData, error) {
	plain := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &plain); err != nil {
		return nil, errors.Wrap(err, "invalid week data json")
	}
	week := WeekData{}
	for day, label := range plain {
		if models.DayOffset(day) < 0 {
			continue
		}
		if label == "" {
			continue
		}
		if !models.ShiftLabel(label).IsValid() {
			return nil, errors.Errorf("unknown shift label: %v", label)
		}
		week[day] = models.ShiftLabel(label)
	}
	return week, nil
}

func (w WeekData) Encode() (string, error) {
	raw, err := json.Marshal(w)
	if err != nil {
		return "", errors.Wrap(err, "week data encode failed")
	}
	return string(raw), nil
}

type WeekSubmitData struct {
	EmployeeID string            `json:"employee_id"`
	Week       map[string]string `json:"week"`
	WeekStart  string            `json:"week_start,omitempty"`
}

func (d WeekSubmitData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("employee is not specified")
	}
	if len(d.Week) == 0 {
		return errors.New("week payload is empty")
	}
	for day, label := range d.Week {
		if models.DayOffset(day) < 0 {
			return errors.Errorf("unknown day key: %v", day)
		}
		if label != "" && !models.ShiftLabel(label).IsValid() {
			return errors.Errorf("unknown shift label: %v", label)
		}
	}
	if d.WeekStart != "" {
		if _, err := time.Parse(DateFormat, d.WeekStart); err != nil {
			return errors.New("invalid week_start, expected YYYY-MM-DD")
		}
	}
	return nil
}
