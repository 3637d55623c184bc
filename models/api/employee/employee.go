package employeeapimodels

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dateFormat = "2006-01-02"

type EmployeeView struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phone_number"`
	Role          string  `json:"role"`
	RoleName      string  `json:"role_name"`
	Status        string  `json:"status"`
	JobPosition   string  `json:"job_position"`
	Restaurant    string  `json:"restaurant"`
	HireDate      *string `json:"hire_date"`
	HourlyRate    float64 `json:"hourly_rate"`
	MonthlySalary float64 `json:"monthly_salary"`
	ContractHours int     `json:"contract_hours"`
	IsActive      bool    `json:"is_active"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:            rec.ID,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		Email:         rec.Email,
		PhoneNumber:   rec.PhoneNumber,
		Role:          string(rec.Role),
		RoleName:      rec.Role.ToHuman(),
		Status:        string(rec.Status),
		JobPosition:   rec.JobPosition,
		Restaurant:    rec.Restaurant,
		HourlyRate:    rec.HourlyRate,
		MonthlySalary: rec.MonthlySalary,
		ContractHours: rec.ContractHours,
		IsActive:      rec.IsActive,
	}
	if rec.HireDate != nil {
		hireDate := rec.HireDate.Format(dateFormat)
		view.HireDate = &hireDate
	}
	return view
}

type EmployeeData struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phone_number"`
	Role          string  `json:"role"`
	JobPosition   string  `json:"job_position"`
	Restaurant    string  `json:"restaurant"`
	HireDate      string  `json:"hire_date"`
	HourlyRate    float64 `json:"hourly_rate"`
	MonthlySalary float64 `json:"monthly_salary"`
	ContractHours int     `json:"contract_hours"`
	Password      string  `json:"password,omitempty"`
}

func (d EmployeeData) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return errors.New("employee name is not specified")
	}
	if !strings.Contains(d.Email, "@") {
		return errors.New("invalid email")
	}
	switch models.UserRole(d.Role) {
	case models.AdminRole, models.ManagerRole, models.EmployeeRole:
	default:
		return errors.Errorf("unknown role: %v", d.Role)
	}
	if d.HireDate != "" {
		if _, err := time.Parse(dateFormat, d.HireDate); err != nil {
			return errors.New("invalid hire_date, expected YYYY-MM-DD")
		}
	}
	return nil
}

func (d EmployeeData) GetHireDate() *time.Time {
	if d.HireDate == "" {
		return nil
	}
	hireDate, err := time.Parse(dateFormat, d.HireDate)
	if err != nil {
		return nil
	}
	return &hireDate
}

type EmployeeFilter struct {
	Restaurant string
	Role       string
	OnlyActive bool
}
