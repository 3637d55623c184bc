package models

type NotificationCode string

const (
	NotifyScheduleApproved NotificationCode = "SCHEDULE_APPROVED"
	NotifyScheduleRejected NotificationCode = "SCHEDULE_REJECTED"
	NotifyApprovalPending  NotificationCode = "APPROVAL_PENDING"
	NotifyLeaveApproved    NotificationCode = "LEAVE_APPROVED"
	NotifyLeaveRejected    NotificationCode = "LEAVE_REJECTED"
	NotifyLeaveRequested   NotificationCode = "LEAVE_REQUESTED"
)

var notificationHumanMsg = map[NotificationCode]string{
	NotifyScheduleApproved: "Votre planning a été approuvé",
	NotifyScheduleRejected: "Votre planning a été refusé",
	NotifyApprovalPending:  "Des demandes sont en attente de validation",
	NotifyLeaveApproved:    "Votre demande de congé a été approuvée",
	NotifyLeaveRejected:    "Votre demande de congé a été refusée",
	NotifyLeaveRequested:   "Nouvelle demande de congé à valider",
}

func (c NotificationCode) ToHuman() string {
	if msg, exist := notificationHumanMsg[c]; exist {
		return msg
	}
	return string(c)
}
