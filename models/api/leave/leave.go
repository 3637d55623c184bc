package leaveapimodels

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

const dateFormat = "2006-01-02"

type LeaveRequestView struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	LeaveName    string  `json:"leave_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment"`
	CreatedAt    string  `json:"created_at"`
	ReviewedAt   *string `json:"reviewed_at"`
}

func LeaveRequestConvert(rec dbmodels.LeaveRequest) LeaveRequestView {
	view := LeaveRequestView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		LeaveType:    string(rec.LeaveType),
		LeaveName:    rec.LeaveType.ToHuman(),
		StartDate:    rec.StartDate.Format(dateFormat),
		EndDate:      rec.EndDate.Format(dateFormat),
		Reason:       rec.Reason,
		Status:       string(rec.Status),
		AdminComment: rec.AdminComment,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.ReviewedAt != nil {
		reviewed := rec.ReviewedAt.Format(time.RFC3339)
		view.ReviewedAt = &reviewed
	}
	return view
}

type LeaveRequestData struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (d LeaveRequestData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("employee is not specified")
	}
	switch models.LeaveType(d.LeaveType) {
	case models.LeavePaid, models.LeaveUnpaid, models.LeaveSick, models.LeaveOther:
	default:
		return errors.Errorf("unknown leave type: %v", d.LeaveType)
	}
	start, err := time.Parse(dateFormat, d.StartDate)
	if err != nil {
		return errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateFormat, d.EndDate)
	if err != nil {
		return errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.New("end_date is before start_date")
	}
	return nil
}

func (d LeaveRequestData) GetDates() (start, end time.Time) {
	start, _ = time.Parse(dateFormat, d.StartDate)
	end, _ = time.Parse(dateFormat, d.EndDate)
	return start, end
}
