package dbmodels

import (
	"resto-hr-backend/models"
	"time"
)

type TimeClockEntry struct {
	BaseModel
	EmployeeID string               `gorm:"type:varchar(36);index:idx_time_clock_employee_date"`
	Employee   *Employee            `gorm:"foreignKey:EmployeeID"`
	Date       time.Time            `gorm:"type:date;index:idx_time_clock_employee_date"`
	Kind       models.TimeClockKind `gorm:"type:varchar(10)"`
	ClockedAt  time.Time
}
