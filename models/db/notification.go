package dbmodels

import (
	"resto-hr-backend/models"
)

type Notification struct {
	BaseModel
	UserID string                  `gorm:"type:varchar(36);index"`
	Code   models.NotificationCode `gorm:"type:varchar(50)"`
	Msg    string
	IsRead bool `gorm:"index"`
}
