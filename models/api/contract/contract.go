package contractapimodels

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

const dateFormat = "2006-01-02"

type ContractView struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Number        string  `json:"number"`
	ContractType  string  `json:"contract_type"`
	Status        string  `json:"status"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	JobPosition   string  `json:"job_position"`
	MonthlySalary float64 `json:"monthly_salary"`
	HourlyRate    float64 `json:"hourly_rate"`
	WeeklyHours   int     `json:"weekly_hours"`
	HasPdf        bool    `json:"has_pdf"`
}

func ContractConvert(rec dbmodels.Contract) ContractView {
	view := ContractView{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Number:        rec.Number,
		ContractType:  string(rec.ContractType),
		Status:        string(rec.Status),
		StartDate:     rec.StartDate.Format(dateFormat),
		JobPosition:   rec.JobPosition,
		MonthlySalary: rec.MonthlySalary,
		HourlyRate:    rec.HourlyRate,
		WeeklyHours:   rec.WeeklyHours,
		HasPdf:        rec.PdfFileKey != "",
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.EndDate != nil {
		endDate := rec.EndDate.Format(dateFormat)
		view.EndDate = &endDate
	}
	return view
}

type ContractData struct {
	EmployeeID    string  `json:"employee_id"`
	ContractType  string  `json:"contract_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	JobPosition   string  `json:"job_position"`
	MonthlySalary float64 `json:"monthly_salary"`
	HourlyRate    float64 `json:"hourly_rate"`
	WeeklyHours   int     `json:"weekly_hours"`
}

func (d ContractData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("employee is not specified")
	}
	if !models.ContractType(d.ContractType).IsValid() {
		return errors.Errorf("unknown contract type: %v", d.ContractType)
	}
	start, err := time.Parse(dateFormat, d.StartDate)
	if err != nil {
		return errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	if d.EndDate != "" {
		end, err := time.Parse(dateFormat, d.EndDate)
		if err != nil {
			return errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		if end.Before(start) {
			return errors.New("end_date is before start_date")
		}
	} else if models.ContractType(d.ContractType) == models.ContractCDD {
		return errors.New("end_date is required for CDD")
	}
	return nil
}

func (d ContractData) GetDates() (start time.Time, end *time.Time) {
	start, _ = time.Parse(dateFormat, d.StartDate)
	if d.EndDate != "" {
		endDate, err := time.Parse(dateFormat, d.EndDate)
		if err == nil {
			end = &endDate
		}
	}
	return start, end
}
