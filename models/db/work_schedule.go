package dbmodels

import (
	"resto-hr-backend/models"
	"time"
)

// WorkSchedule is the authoritative schedule, one row per employee per date.
// The unique index backs the insert-or-update path on conflicting writes.
type WorkSchedule struct {
	BaseModel
	EmployeeID  string            `gorm:"type:varchar(36);uniqueIndex:idx_work_schedule_employee_date"`
	Employee    *Employee         `gorm:"foreignKey:EmployeeID"`
	Date        time.Time         `gorm:"type:date;uniqueIndex:idx_work_schedule_employee_date"`
	StartTime   *string           `gorm:"type:varchar(5)"`
	EndTime     *string           `gorm:"type:varchar(5)"`
	ShiftType   models.ShiftLabel `gorm:"type:varchar(50)"`
	JobPosition *string           `gorm:"type:varchar(150)"`
	IsWorking   bool
}

// ManagerWorkSchedule is a staged draft row awaiting approval. Rows are
// short-lived: created at proposal time, removed once the approval resolves.
type ManagerWorkSchedule struct {
	BaseModel
	EmployeeID  string            `gorm:"type:varchar(36);index"`
	Employee    *Employee         `gorm:"foreignKey:EmployeeID"`
	ManagerID   string            `gorm:"type:varchar(36);index"`
	Date        time.Time         `gorm:"type:date"`
	StartTime   *string           `gorm:"type:varchar(5)"`
	EndTime     *string           `gorm:"type:varchar(5)"`
	ShiftType   models.ShiftLabel `gorm:"type:varchar(50)"`
	JobPosition *string           `gorm:"type:varchar(150)"`
	IsWorking   bool
}

func (r ManagerWorkSchedule) ToWorkSchedule() WorkSchedule {
	return WorkSchedule{
		EmployeeID:  r.EmployeeID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		ShiftType:   r.ShiftType,
		JobPosition: r.JobPosition,
		IsWorking:   r.IsWorking,
	}
}
