package proposalhandler

import (
	"resto-hr-backend/db"
	approvalhandler "resto-hr-backend/lib/approval"
	approvalstore "resto-hr-backend/lib/approval/store"
	employeestore "resto-hr-backend/lib/employee/store"
	notificationhandler "resto-hr-backend/lib/notification"
	proposalstore "resto-hr-backend/lib/schedule/proposal-store"
	"resto-hr-backend/lib/utils/helpers"
	"resto-hr-backend/models"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	CreateDraft(managerID string, data scheduleapimodels.WorkScheduleData) (view *scheduleapimodels.WorkScheduleView, hMsg string, err error)
	SubmitWeek(managerID string, data scheduleapimodels.WeekSubmitData) (approvalID string, hMsg string, err error)
	SendApprovalRequest(managerID, referenceID string) (approvalID string, hMsg string, err error)
	ListDrafts(managerID string) ([]scheduleapimodels.WorkScheduleView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         proposalstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         proposalstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(managerID string) *log.Entry {
	logger := log.
		WithField("manager_id", managerID)
	return logger
}

// CreateDraft stages a single proposed day. Draft rows live apart from the
// authoritative schedule until an admin resolves them.
func (i impl) CreateDraft(managerID string, data scheduleapimodels.WorkScheduleData) (*scheduleapimodels.WorkScheduleView, string, error) {
	logger := i.getLogger(managerID)
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
	rec := dbmodels.ManagerWorkSchedule{
		ManagerID:   managerID,
		EmployeeID:  data.EmployeeID,
		Date:        data.GetDate(),
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		ShiftType:   models.ShiftLabel(data.ShiftType),
		JobPosition: data.JobPosition,
		IsWorking:   data.IsWorking,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("draft create failed")
		return nil, "", err
	}
	rec.ID = id
	view := scheduleapimodels.ManagerWorkScheduleConvert(rec)
	return &view, "", nil
}

// SubmitWeek stages a whole proposed week in one shot: one draft row per
// working day plus a single pending approval carrying the week as JSON. The
// approval row keeps a pointer to the first draft for audit, the JSON payload
// is what the resolver reads.
func (i impl) SubmitWeek(managerID string, data scheduleapimodels.WeekSubmitData) (approvalID string, hMsg string, err error) {
	logger := i.getLogger(managerID).WithField("employee_id", data.EmployeeID)
	if err = data.Validate(); err != nil {
		return "", err.Error(), nil
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("employee fetch failed")
		return "", "", err
	}
	if employee == nil {
		return "", "employee not found", nil
	}

	week := scheduleapimodels.WeekData{}
	for day, label := range data.Week {
		if label == "" {
			continue
		}
		week[day] = models.ShiftLabel(label)
	}
	if len(week) == 0 {
		return "", "week payload is empty", nil
	}

	weekStart := helpers.WeekStart(time.Now())
	if data.WeekStart != "" {
		weekStart, _ = time.Parse(scheduleapimodels.DateFormat, data.WeekStart)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := proposalstore.NewInstance(tx)
		txApprovalStore := approvalstore.NewInstance(tx)
		approvalID, err = stageWeek(txStore, txApprovalStore, managerID, data.EmployeeID, week, weekStart)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("week submit failed")
		return "", "", err
	}
	logger.WithField("approval_id", approvalID).Info("weekly schedule submitted")
	i.notifyAdmins(models.NotifyApprovalPending)
	return approvalID, "", nil
}

// SendApprovalRequest raises a pending approval for an already staged draft.
// This is the per-day submission path kept alongside SubmitWeek.
func (i impl) SendApprovalRequest(managerID, referenceID string) (approvalID string, hMsg string, err error) {
	logger := i.getLogger(managerID)
	draft, err := i.store.GetByID(referenceID)
	if err != nil {
		logger.WithError(err).Error("draft fetch failed")
		return "", "", err
	}
	if draft == nil {
		return "", "draft schedule not found", nil
	}
	if approvalhandler.Instance == nil {
		return "", "", nil
	}
	approvalID, err = approvalhandler.Instance.CreateRequest(
		models.ApprovalTypeScheduleChange, &referenceID, managerID, draft.EmployeeID, "", nil)
	if err != nil {
		logger.WithError(err).Error("approval request create failed")
		return "", "", err
	}
	i.notifyAdmins(models.NotifyApprovalPending)
	return approvalID, "", nil
}

func (i impl) ListDrafts(managerID string) ([]scheduleapimodels.WorkScheduleView, error) {
	list, err := i.store.List(managerID)
	if err != nil {
		return nil, err
	}
	result := make([]scheduleapimodels.WorkScheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, scheduleapimodels.ManagerWorkScheduleConvert(rec))
	}
	return result, nil
}

func (i impl) notifyAdmins(code models.NotificationCode) {
	if notificationhandler.Instance == nil {
		return
	}
	admins, err := i.employeeStore.ListByRole(string(models.AdminRole))
	if err != nil {
		log.WithError(err).Error("admin list fetch failed")
		return
	}
	for _, admin := range admins {
		notificationhandler.Instance.Notify(admin.ID, code)
	}
}

// stageWeek writes the draft rows and the pending approval atomically. Repos
// days get a draft row too so the admin sees the full proposed week, but the
// approval payload is the source of truth for materialization.
func stageWeek(store proposalstore.Provider, approvals approvalstore.Provider, managerID, employeeID string, week scheduleapimodels.WeekData, weekStart time.Time) (approvalID string, err error) {
	var firstDraftID *string
	for _, day := range models.WeekDays {
		label, ok := week[day]
		if !ok {
			continue
		}
		times, isWorking := label.GetTimes()
		rec := dbmodels.ManagerWorkSchedule{
			ManagerID:  managerID,
			EmployeeID: employeeID,
			Date:       helpers.DayDate(weekStart, models.DayOffset(day)),
			ShiftType:  label,
			IsWorking:  isWorking,
		}
		if isWorking {
			rec.StartTime = &times.StartTime
			rec.EndTime = &times.EndTime
		}
		id, err := store.Create(rec)
		if err != nil {
			return "", err
		}
		if firstDraftID == nil {
			draftID := id
			firstDraftID = &draftID
		}
	}

	raw, err := week.Encode()
	if err != nil {
		return "", err
	}
	approvalID, err = approvals.Create(dbmodels.AdminApproval{
		Type:        models.ApprovalTypeScheduleChange,
		ReferenceID: firstDraftID,
		ManagerID:   managerID,
		EmployeeID:  employeeID,
		Data:        raw,
		Status:      models.ApprovalStatusPending,
		WeekStart:   &weekStart,
	})
	if err != nil {
		return "", err
	}
	return approvalID, nil
}
