package dbmodels

import (
	"resto-hr-backend/models"
	"time"
)

// AdminApproval is a permanent audit record; rows are resolved, never deleted.
// Data holds the full-week proposal JSON and is the source of truth for
// materialization. ReferenceID points at one created draft row and may be nil
// or dangle after the drafts are cleaned up.
type AdminApproval struct {
	BaseModel
	Type         string                `gorm:"type:varchar(50);index"`
	ReferenceID  *string               `gorm:"type:varchar(36)"`
	ManagerID    string                `gorm:"type:varchar(36);index"`
	Manager      *Employee             `gorm:"foreignKey:ManagerID"`
	EmployeeID   string                `gorm:"type:varchar(36)"`
	Data         string                `gorm:"type:text"`
	Status       models.ApprovalStatus `gorm:"type:varchar(20);index"`
	AdminComment *string
	// Monday anchor of the proposed week; nil falls back to the week current
	// at resolve time (legacy submissions carry no anchor).
	WeekStart  *time.Time `gorm:"type:date"`
	ReviewedAt *time.Time
}
