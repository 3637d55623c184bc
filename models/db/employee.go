package dbmodels

import (
	"fmt"
	"resto-hr-backend/models"
	"time"
)

type Employee struct {
	BaseModel
	Password    string                `gorm:"type:varchar(128)"`
	FirstName   string                `gorm:"type:varchar(150)"`
	LastName    string                `gorm:"type:varchar(150)"`
	Email       string                `gorm:"type:varchar(255);index"`
	PhoneNumber string                `gorm:"type:varchar(20)"`
	Role        models.UserRole       `gorm:"type:varchar(50)"`
	Status      models.EmployeeStatus `gorm:"type:varchar(50)"`
	JobPosition string                `gorm:"type:varchar(150)"`
	Restaurant  string                `gorm:"type:varchar(150)"`
	HireDate    *time.Time            `gorm:"type:date"`
	// payroll fields
	HourlyRate    float64
	MonthlySalary float64
	ContractHours int
	IsActive      bool
	PushEnabled   bool
	LastLogin     time.Time
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
