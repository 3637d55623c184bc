package notificationhandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	notificationstore "resto-hr-backend/lib/notification/store"
	"resto-hr-backend/lib/smtp"
	connectionhub "resto-hr-backend/lib/ws/hub/connection-hub"
	"resto-hr-backend/models"
	notificationapimodels "resto-hr-backend/models/api/notification"
	dbmodels "resto-hr-backend/models/db"
	wsmodels "resto-hr-backend/models/ws"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(userID string, code models.NotificationCode)
	List(userID string) ([]notificationapimodels.NotificationView, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(userID, code string) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", code)
	return logger
}

// Notify is fire-and-forget: delivery problems are logged, never surfaced
// to the triggering operation.
func (i impl) Notify(userID string, code models.NotificationCode) {
	logger := i.getLogger(userID, string(code))
	user, err := i.employeeStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("recipient fetch failed")
		return
	}
	if user == nil {
		logger.Error("recipient not found")
		return
	}
	rec := dbmodels.Notification{
		UserID: userID,
		Code:   code,
		Msg:    code.ToHuman(),
	}
	if _, err = i.store.Create(rec); err != nil {
		logger.WithError(err).Error("notification save failed")
		return
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(userID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(code),
			Msg:      code.ToHuman(),
		})
	}
	if user.PushEnabled && user.Email != "" && smtp.Instance != nil {
		if err = smtp.Instance.SendEMail(user.Email, "Notification", code.ToHuman()); err != nil {
			logger.WithError(err).Error("notification email send failed")
		}
	}
}

func (i impl) List(userID string) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.UnreadCount(userID)
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}
