package schedulestore

import (
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.WorkSchedule) (id string, err error)
	GetByID(id string) (rec *dbmodels.WorkSchedule, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter scheduleapimodels.ScheduleFilter) (list []dbmodels.WorkSchedule, err error)
	ListByDateRange(from, to time.Time) (list []dbmodels.WorkSchedule, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert inserts a schedule row; on a (employee_id, date) conflict the
// existing row is updated in place, which makes concurrent submissions for
// the same day resolve to the last writer.
func (i impl) Upsert(rec dbmodels.WorkSchedule) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "shift_type", "job_position", "is_working", "updated_at",
			}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkSchedule, error) {
	rec := dbmodels.WorkSchedule{}
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.WorkSchedule{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.WorkSchedule{
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

func (i impl) List(filter scheduleapimodels.ScheduleFilter) (list []dbmodels.WorkSchedule, err error) {
	list = []dbmodels.WorkSchedule{}
	tx := i.db.
		Order("date DESC, created_at DESC").
		Preload("Employee")
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Date != "" {
		tx = tx.Where("date = ?", filter.Date)
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

func (i impl) ListByDateRange(from, to time.Time) (list []dbmodels.WorkSchedule, err error) {
	list = []dbmodels.WorkSchedule{}
	err = i.db.
		Where("date >= ?", from).
		Where("date <= ?", to).
		Order("date ASC").
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
