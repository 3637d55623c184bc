package timeclockhandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	timeclockstore "resto-hr-backend/lib/timeclock/store"
	"resto-hr-backend/lib/utils/helpers"
	"resto-hr-backend/models"
	timeclockapimodels "resto-hr-backend/models/api/timeclock"
	dbmodels "resto-hr-backend/models/db"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Clock(employeeID string) (view *timeclockapimodels.TimeClockEntryView, hMsg string, err error)
	List(filter timeclockapimodels.TimeClockFilter) ([]timeclockapimodels.TimeClockEntryView, error)
	WorkedHours(from, to time.Time) ([]timeclockapimodels.WorkedHours, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         timeclockstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         timeclockstore.Provider
	employeeStore employeestore.Provider
}

// Clock toggles the employee's state for today: the first call of a day is an
// IN, each following call flips the direction of the last entry.
func (i impl) Clock(employeeID string) (*timeclockapimodels.TimeClockEntryView, string, error) {
	logger := log.WithField("employee_id", employeeID)
	employee, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("employee fetch failed")
		return nil, "", err
	}
	if employee == nil {
		return nil, "employee not found", nil
	}
	now := time.Now()
	today := helpers.ToDate(now)
	last, err := i.store.GetLastEntry(employeeID, today)
	if err != nil {
		logger.WithError(err).Error("last clock entry fetch failed")
		return nil, "", err
	}
	kind := models.ClockIn
	if last != nil && last.Kind == models.ClockIn {
		kind = models.ClockOut
	}
	rec := dbmodels.TimeClockEntry{
		EmployeeID: employeeID,
		Date:       today,
		Kind:       kind,
		ClockedAt:  now,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("clock entry create failed")
		return nil, "", err
	}
	rec.ID = id
	rec.Employee = employee
	logger.WithField("kind", kind).Info("clock entry recorded")
	view := timeclockapimodels.TimeClockEntryConvert(rec)
	return &view, "", nil
}

func (i impl) List(filter timeclockapimodels.TimeClockFilter) ([]timeclockapimodels.TimeClockEntryView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]timeclockapimodels.TimeClockEntryView, 0, len(list))
	for _, rec := range list {
		result = append(result, timeclockapimodels.TimeClockEntryConvert(rec))
	}
	return result, nil
}

func (i impl) WorkedHours(from, to time.Time) ([]timeclockapimodels.WorkedHours, error) {
	list, err := i.store.ListByRange(from, to)
	if err != nil {
		return nil, err
	}
	return AggregateWorkedHours(list), nil
}

// AggregateWorkedHours pairs IN/OUT entries per employee in clock order and
// sums the durations. A dangling IN without a matching OUT contributes
// nothing.
func AggregateWorkedHours(entries []dbmodels.TimeClockEntry) []timeclockapimodels.WorkedHours {
	type acc struct {
		name    string
		hours   float64
		pending *time.Time
	}
	perEmployee := map[string]*acc{}
	for idx := range entries {
		entry := entries[idx]
		rec, ok := perEmployee[entry.EmployeeID]
		if !ok {
			rec = &acc{}
			if entry.Employee != nil {
				rec.name = entry.Employee.GetFullName()
			}
			perEmployee[entry.EmployeeID] = rec
		}
		switch entry.Kind {
		case models.ClockIn:
			clockedAt := entry.ClockedAt
			rec.pending = &clockedAt
		case models.ClockOut:
			if rec.pending == nil {
				continue
			}
			rec.hours += entry.ClockedAt.Sub(*rec.pending).Hours()
			rec.pending = nil
		}
	}
	result := make([]timeclockapimodels.WorkedHours, 0, len(perEmployee))
	for employeeID, rec := range perEmployee {
		result = append(result, timeclockapimodels.WorkedHours{
			EmployeeID:   employeeID,
			EmployeeName: rec.name,
			Hours:        rec.hours,
		})
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].EmployeeName < result[b].EmployeeName
	})
	return result
}
