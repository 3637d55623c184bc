package proposalstore

import (
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ManagerWorkSchedule) (id string, err error)
	GetByID(id string) (rec *dbmodels.ManagerWorkSchedule, err error)
	Delete(id string) error
	DeleteByEmployeeWeek(employeeID string, weekStart time.Time) error
	List(managerID string) (list []dbmodels.ManagerWorkSchedule, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ManagerWorkSchedule) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ManagerWorkSchedule, error) {
	rec := dbmodels.ManagerWorkSchedule{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ManagerWorkSchedule{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

// DeleteByEmployeeWeek removes all staged rows of one employee's proposed
// week once the approval is resolved.
func (i impl) DeleteByEmployeeWeek(employeeID string, weekStart time.Time) error {
	weekEnd := weekStart.AddDate(0, 0, 6)
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("date >= ?", weekStart).
		Where("date <= ?", weekEnd).
		Delete(&dbmodels.ManagerWorkSchedule{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(managerID string) (list []dbmodels.ManagerWorkSchedule, err error) {
	list = []dbmodels.ManagerWorkSchedule{}
	tx := i.db.
		Order("date DESC, created_at DESC").
		Preload("Employee")
	if managerID != "" {
		tx = tx.Where("manager_id = ?", managerID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
