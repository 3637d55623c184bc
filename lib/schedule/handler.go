package schedulehandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	schedulestore "resto-hr-backend/lib/schedule/store"
	"resto-hr-backend/models"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(filter scheduleapimodels.ScheduleFilter) ([]scheduleapimodels.WorkScheduleView, error)
	ListWeek(weekStart time.Time) ([]scheduleapimodels.WorkScheduleView, error)
	Upsert(data scheduleapimodels.WorkScheduleData) (view *scheduleapimodels.WorkScheduleView, hMsg string, err error)
	Update(id string, data scheduleapimodels.WorkScheduleData) (hMsg string, err error)
	Delete(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         schedulestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         schedulestore.Provider
	employeeStore employeestore.Provider
}

func (i impl) List(filter scheduleapimodels.ScheduleFilter) ([]scheduleapimodels.WorkScheduleView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]scheduleapimodels.WorkScheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, scheduleapimodels.WorkScheduleConvert(rec))
	}
	return result, nil
}

func (i impl) ListWeek(weekStart time.Time) ([]scheduleapimodels.WorkScheduleView, error) {
	list, err := i.store.ListByDateRange(weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	result := make([]scheduleapimodels.WorkScheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, scheduleapimodels.WorkScheduleConvert(rec))
	}
	return result, nil
}

// Upsert is the direct admin edit path, bypassing the approval pipeline.
// Writing the same (employee, date) twice updates the existing row.
func (i impl) Upsert(data scheduleapimodels.WorkScheduleData) (*scheduleapimodels.WorkScheduleView, string, error) {
	logger := log.WithField("employee_id", data.EmployeeID)
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("employee fetch failed")
		return nil, "", err
	}
	if employee == nil {
		return nil, "employee not found", nil
	}
	rec := dbmodels.WorkSchedule{
		EmployeeID:  data.EmployeeID,
		Date:        data.GetDate(),
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		ShiftType:   models.ShiftLabel(data.ShiftType),
		JobPosition: data.JobPosition,
		IsWorking:   data.IsWorking,
	}
	id, err := i.store.Upsert(rec)
	if err != nil {
		logger.WithError(err).Error("work schedule upsert failed")
		return nil, "", err
	}
	saved, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("work schedule fetch failed")
		return nil, "", err
	}
	if saved == nil {
		// conflict path keeps the original row id, refetch by key
		rec.ID = id
		view := scheduleapimodels.WorkScheduleConvert(rec)
		return &view, "", nil
	}
	view := scheduleapimodels.WorkScheduleConvert(*saved)
	return &view, "", nil
}

func (i impl) Update(id string, data scheduleapimodels.WorkScheduleData) (hMsg string, err error) {
	logger := log.WithField("schedule_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("work schedule fetch failed")
		return "", err
	}
	if rec == nil {
		return "work schedule not found", nil
	}
	if data.ShiftType != "" && !models.ShiftLabel(data.ShiftType).IsValid() {
		return "unknown shift label", nil
	}
	updMap := map[string]interface{}{}
	if data.ShiftType != "" {
		updMap["shift_type"] = data.ShiftType
	}
	if data.StartTime != nil {
		updMap["start_time"] = data.StartTime
	}
	if data.EndTime != nil {
		updMap["end_time"] = data.EndTime
	}
	if data.JobPosition != nil {
		updMap["job_position"] = data.JobPosition
	}
	updMap["is_working"] = data.IsWorking
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("work schedule update failed")
		return "", err
	}
	return "", nil
}

func (i impl) Delete(id string) (hMsg string, err error) {
	logger := log.WithField("schedule_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("work schedule fetch failed")
		return "", err
	}
	if rec == nil {
		return "work schedule not found", nil
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("work schedule delete failed")
		return "", err
	}
	return "", nil
}
