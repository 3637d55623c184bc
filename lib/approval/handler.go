package approvalhandler

import (
	"resto-hr-backend/db"
	approvalstore "resto-hr-backend/lib/approval/store"
	notificationhandler "resto-hr-backend/lib/notification"
	proposalstore "resto-hr-backend/lib/schedule/proposal-store"
	schedulestore "resto-hr-backend/lib/schedule/store"
	"resto-hr-backend/lib/utils/helpers"
	"resto-hr-backend/models"
	approvalapimodels "resto-hr-backend/models/api/approval"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	List(status string) ([]approvalapimodels.AdminApprovalView, error)
	CreateRequest(approvalType string, referenceID *string, managerID, employeeID, data string, weekStart *time.Time) (id string, err error)
	Approve(id string) (hMsg string, err error)
	Reject(id string, comment *string) (hMsg string, err error)
	PendingCount() (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         approvalstore.NewInstance(db.DB),
		proposalStore: proposalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         approvalstore.Provider
	proposalStore proposalstore.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	logger := log.
		WithField("approval_id", id)
	return logger
}

func (i impl) List(status string) ([]approvalapimodels.AdminApprovalView, error) {
	list, err := i.store.List(status)
	if err != nil {
		return nil, err
	}
	result := make([]approvalapimodels.AdminApprovalView, 0, len(list))
	for _, rec := range list {
		result = append(result, approvalapimodels.AdminApprovalConvert(rec))
	}
	return result, nil
}

func (i impl) PendingCount() (int64, error) {
	return i.store.PendingCount()
}

// CreateRequest inserts a pending approval row. When the caller supplies no
// employee, it is recovered from the referenced draft row so the resolver can
// materialize without chasing the pointer again.
func (i impl) CreateRequest(approvalType string, referenceID *string, managerID, employeeID, data string, weekStart *time.Time) (id string, err error) {
	if employeeID == "" && referenceID != nil {
		draft, err := i.proposalStore.GetByID(*referenceID)
		if err != nil {
			return "", err
		}
		if draft != nil {
			employeeID = draft.EmployeeID
		}
	}
	rec := dbmodels.AdminApproval{
		Type:        approvalType,
		ReferenceID: referenceID,
		ManagerID:   managerID,
		EmployeeID:  employeeID,
		Data:        data,
		Status:      models.ApprovalStatusPending,
		WeekStart:   weekStart,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("approval_id", id).
		WithField("manager_id", managerID).
		Info("approval request created")
	return id, nil
}

// Approve moves a pending approval to its terminal approved state and makes
// the proposed week authoritative. The per-day upserts, the draft cleanup and
// the status update run in one transaction, so a failure mid-week leaves the
// approval pending and the schedule untouched.
func (i impl) Approve(id string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, hMsg, err := i.checkResolvable(id, models.ApprovalStatusApproved)
	if hMsg != "" || err != nil {
		return hMsg, err
	}

	var week scheduleapimodels.WeekData
	useReference := false
	switch {
	case rec.Data != "":
		week, err = scheduleapimodels.ParseWeekData(rec.Data)
		if err != nil {
			logger.WithError(err).Error("proposal payload parse failed")
			return "invalid proposal payload", nil
		}
		if rec.EmployeeID == "" {
			logger.Error("proposal has no employee")
			return "proposal has no employee", nil
		}
	case rec.ReferenceID != nil:
		useReference = true
	default:
		return "proposal payload is empty", nil
	}

	weekStart := helpers.WeekStart(time.Now())
	if rec.WeekStart != nil {
		weekStart = helpers.ToDate(*rec.WeekStart)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		scheduleStore := schedulestore.NewInstance(tx)
		txProposalStore := proposalstore.NewInstance(tx)
		store := approvalstore.NewInstance(tx)
		if useReference {
			return materializeReference(scheduleStore, txProposalStore, store, *rec)
		}
		return materializeWeek(scheduleStore, txProposalStore, store, *rec, week, weekStart)
	})
	if err != nil {
		logger.WithError(err).Error("approval materialization failed")
		return "", err
	}
	logger.Info("approval approved")
	i.notify(rec.ManagerID, models.NotifyScheduleApproved)
	return "", nil
}

// Reject resolves the approval without touching the schedule stores. The
// staged draft rows are deliberately left in place: the approval row is the
// audit record and keeps the rejected proposal readable.
func (i impl) Reject(id string, comment *string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, hMsg, err := i.checkResolvable(id, models.ApprovalStatusRejected)
	if hMsg != "" || err != nil {
		return hMsg, err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":      models.ApprovalStatusRejected,
		"reviewed_at": &now,
	}
	if comment != nil {
		updMap["admin_comment"] = comment
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		logger.WithError(err).Error("approval status update failed")
		return "", err
	}
	logger.Info("approval rejected")
	i.notify(rec.ManagerID, models.NotifyScheduleRejected)
	return "", nil
}

// checkResolvable guards the state machine: only a pending record may move,
// and only to a terminal state. Repeated resolve calls are soft no-ops.
func (i impl) checkResolvable(id string, to models.ApprovalStatus) (rec *dbmodels.AdminApproval, hMsg string, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("approval fetch failed")
		return nil, "", err
	}
	if rec == nil {
		return nil, "approval request not found", nil
	}
	if !rec.Status.IsAllowChange(to) {
		return nil, "approval request is already resolved", nil
	}
	return rec, "", nil
}

func (i impl) notify(userID string, code models.NotificationCode) {
	if notificationhandler.Instance == nil || userID == "" {
		return
	}
	notificationhandler.Instance.Notify(userID, code)
}

// materializeWeek upserts one authoritative row per working day of the
// proposed week, removes the staged drafts and marks the approval approved.
// Repos days and absent days produce no row.
func materializeWeek(scheduleStore schedulestore.Provider, draftStore proposalstore.Provider, store approvalstore.Provider, rec dbmodels.AdminApproval, week scheduleapimodels.WeekData, weekStart time.Time) error {
	for _, day := range models.WeekDays {
		label, ok := week[day]
		if !ok || label == models.ShiftRepos {
			continue
		}
		times, isWorking := label.GetTimes()
		row := dbmodels.WorkSchedule{
			EmployeeID: rec.EmployeeID,
			Date:       helpers.DayDate(weekStart, models.DayOffset(day)),
			StartTime:  &times.StartTime,
			EndTime:    &times.EndTime,
			ShiftType:  label,
			IsWorking:  isWorking,
		}
		if _, err := scheduleStore.Upsert(row); err != nil {
			return err
		}
	}
	if err := draftStore.DeleteByEmployeeWeek(rec.EmployeeID, weekStart); err != nil {
		return err
	}
	return markApproved(store, rec.ID)
}

// materializeReference is the single-day path for approvals carrying only a
// draft pointer: the draft row is promoted verbatim and then removed.
func materializeReference(scheduleStore schedulestore.Provider, draftStore proposalstore.Provider, store approvalstore.Provider, rec dbmodels.AdminApproval) error {
	draft, err := draftStore.GetByID(*rec.ReferenceID)
	if err != nil {
		return err
	}
	if draft == nil {
		return gorm.ErrRecordNotFound
	}
	if _, err = scheduleStore.Upsert(draft.ToWorkSchedule()); err != nil {
		return err
	}
	if err = draftStore.Delete(draft.ID); err != nil {
		return err
	}
	return markApproved(store, rec.ID)
}

func markApproved(store approvalstore.Provider, id string) error {
	now := time.Now()
	return store.Update(id, map[string]interface{}{
		"status":      models.ApprovalStatusApproved,
		"reviewed_at": &now,
	})
}
