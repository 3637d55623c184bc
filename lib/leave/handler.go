package leavehandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	leavestore "resto-hr-backend/lib/leave/store"
	notificationhandler "resto-hr-backend/lib/notification"
	"resto-hr-backend/models"
	leaveapimodels "resto-hr-backend/models/api/leave"
	dbmodels "resto-hr-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data leaveapimodels.LeaveRequestData) (view *leaveapimodels.LeaveRequestView, hMsg string, err error)
	Approve(reviewerID, id string) (hMsg string, err error)
	Reject(reviewerID, id string, comment *string) (hMsg string, err error)
	List(employeeID, status string) ([]leaveapimodels.LeaveRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         leavestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         leavestore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	logger := log.
		WithField("leave_request_id", id)
	return logger
}

func (i impl) Create(data leaveapimodels.LeaveRequestData) (*leaveapimodels.LeaveRequestView, string, error) {
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		log.WithError(err).Error("employee fetch failed")
		return nil, "", err
	}
	if employee == nil {
		return nil, "employee not found", nil
	}
	start, end := data.GetDates()
	rec := dbmodels.LeaveRequest{
		EmployeeID: data.EmployeeID,
		LeaveType:  models.LeaveType(data.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     data.Reason,
		Status:     models.LeaveStatusPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("leave request create failed")
		return nil, "", err
	}
	rec.ID = id
	rec.Employee = employee
	i.getLogger(id).Info("leave request created")
	i.notifyAdmins(models.NotifyLeaveRequested)
	view := leaveapimodels.LeaveRequestConvert(rec)
	return &view, "", nil
}

func (i impl) Approve(reviewerID, id string) (hMsg string, err error) {
	return i.resolve(reviewerID, id, models.LeaveStatusApproved, nil)
}

func (i impl) Reject(reviewerID, id string, comment *string) (hMsg string, err error) {
	return i.resolve(reviewerID, id, models.LeaveStatusRejected, comment)
}

// resolve moves a pending request to a terminal state. Already resolved
// requests are soft no-ops, same as the schedule approval pipeline.
func (i impl) resolve(reviewerID, id string, to models.LeaveStatus, comment *string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("leave request fetch failed")
		return "", err
	}
	if rec == nil {
		return "leave request not found", nil
	}
	if !rec.Status.IsAllowChange(to) {
		return "leave request is already resolved", nil
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":      to,
		"reviewed_by": &reviewerID,
		"reviewed_at": &now,
	}
	if comment != nil {
		updMap["admin_comment"] = comment
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("leave request update failed")
		return "", err
	}
	logger.WithField("status", to).Info("leave request resolved")
	if notificationhandler.Instance != nil {
		code := models.NotifyLeaveApproved
		if to == models.LeaveStatusRejected {
			code = models.NotifyLeaveRejected
		}
		notificationhandler.Instance.Notify(rec.EmployeeID, code)
	}
	return "", nil
}

func (i impl) List(employeeID, status string) ([]leaveapimodels.LeaveRequestView, error) {
	list, err := i.store.List(employeeID, status)
	if err != nil {
		return nil, err
	}
	result := make([]leaveapimodels.LeaveRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, leaveapimodels.LeaveRequestConvert(rec))
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
