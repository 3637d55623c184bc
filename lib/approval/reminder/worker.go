package approvalreminder

import (
	"context"
	"resto-hr-backend/config"
	"resto-hr-backend/db"
	approvalhandler "resto-hr-backend/lib/approval"
	employeestore "resto-hr-backend/lib/employee/store"
	notificationhandler "resto-hr-backend/lib/notification"
	baseworker "resto-hr-backend/lib/utils/base-worker"
	"resto-hr-backend/models"
	"time"
)

// StartWorker periodically reminds admins about approvals waiting in the
// pending state.
func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Approval.ReminderIntervalInMin) * time.Minute
	worker := reminder{
		BaseImpl:      baseworker.NewInstance("pending-approval-reminder", time.Minute, interval),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	go worker.Run(ctx, worker.remind)
}

type reminder struct {
	*baseworker.BaseImpl
	employeeStore employeestore.Provider
}

func (w reminder) remind(ctx context.Context) {
	logger := w.GetLogger()
	if approvalhandler.Instance == nil || notificationhandler.Instance == nil {
		return
	}
	count, err := approvalhandler.Instance.PendingCount()
	if err != nil {
		logger.WithError(err).Error("pending approvals count failed")
		return
	}
	if count == 0 {
		return
	}
	logger.WithField("pending_count", count).Info("pending approvals reminder")
	admins, err := w.employeeStore.ListByRole(string(models.AdminRole))
	if err != nil {
		logger.WithError(err).Error("admin list fetch failed")
		return
	}
	for _, admin := range admins {
		notificationhandler.Instance.Notify(admin.ID, models.NotifyApprovalPending)
	}
}
