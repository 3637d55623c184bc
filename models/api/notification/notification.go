package notificationapimodels

import (
	dbmodels "resto-hr-backend/models/db"
	"time"
)

type NotificationView struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Msg       string `json:"msg"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Code:      string(rec.Code),
		Msg:       rec.Msg,
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
