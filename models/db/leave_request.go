package dbmodels

import (
	"resto-hr-backend/models"
	"time"
)

type LeaveRequest struct {
	BaseModel
	EmployeeID   string             `gorm:"type:varchar(36);index"`
	Employee     *Employee          `gorm:"foreignKey:EmployeeID"`
	LeaveType    models.LeaveType   `gorm:"type:varchar(50)"`
	StartDate    time.Time          `gorm:"type:date"`
	EndDate      time.Time          `gorm:"type:date"`
	Reason       string
	Status       models.LeaveStatus `gorm:"type:varchar(20);index"`
	ReviewedBy   *string            `gorm:"type:varchar(36)"`
	AdminComment *string
	ReviewedAt   *time.Time
}
