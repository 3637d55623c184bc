package timeclockstore

import (
	timeclockapimodels "resto-hr-backend/models/api/timeclock"
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.TimeClockEntry) (id string, err error)
	GetLastEntry(employeeID string, date time.Time) (rec *dbmodels.TimeClockEntry, err error)
	List(filter timeclockapimodels.TimeClockFilter) (list []dbmodels.TimeClockEntry, err error)
	ListByRange(from, to time.Time) (list []dbmodels.TimeClockEntry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeClockEntry) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetLastEntry(employeeID string, date time.Time) (*dbmodels.TimeClockEntry, error) {
	rec := dbmodels.TimeClockEntry{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Order("clocked_at DESC").
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

func (i impl) List(filter timeclockapimodels.TimeClockFilter) (list []dbmodels.TimeClockEntry, err error) {
	list = []dbmodels.TimeClockEntry{}
	tx := i.db.
		Order("clocked_at DESC").
		Preload("Employee")
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != "" {
		tx = tx.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		tx = tx.Where("date <= ?", filter.DateTo)
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

func (i impl) ListByRange(from, to time.Time) (list []dbmodels.TimeClockEntry, err error) {
	list = []dbmodels.TimeClockEntry{}
	err = i.db.
		Where("date >= ?", from).
		Where("date <= ?", to).
		Order("employee_id ASC, clocked_at ASC").
		Preload("Employee").
		Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
