package dbmodels

import (
	"resto-hr-backend/models"
	"time"
)

type Contract struct {
	BaseModel
	EmployeeID    string                `gorm:"type:varchar(36);index"`
	Employee      *Employee             `gorm:"foreignKey:EmployeeID"`
	Number        string                `gorm:"type:varchar(50)"`
	ContractType  models.ContractType   `gorm:"type:varchar(20)"`
	Status        models.ContractStatus `gorm:"type:varchar(20)"`
	StartDate     time.Time             `gorm:"type:date"`
	EndDate       *time.Time            `gorm:"type:date"`
	JobPosition   string                `gorm:"type:varchar(150)"`
	MonthlySalary float64
	HourlyRate    float64
	WeeklyHours   int
	// S3 object key of the generated PDF, empty until first generation
	PdfFileKey string `gorm:"type:varchar(255)"`
}
