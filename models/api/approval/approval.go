package approvalapimodels

import (
	dbmodels "resto-hr-backend/models/db"
	"time"
)

type AdminApprovalView struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	ReferenceID  *string `json:"reference_id"`
	ManagerID    string  `json:"manager_id"`
	ManagerName  string  `json:"manager_name,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	Data         string  `json:"data"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment"`
	WeekStart    *string `json:"week_start"`
	CreatedAt    string  `json:"created_at"`
	ReviewedAt   *string `json:"reviewed_at"`
}

func AdminApprovalConvert(rec dbmodels.AdminApproval) AdminApprovalView {
	view := AdminApprovalView{
		ID:           rec.ID,
		Type:         rec.Type,
		ReferenceID:  rec.ReferenceID,
		ManagerID:    rec.ManagerID,
		EmployeeID:   rec.EmployeeID,
		Data:         rec.Data,
		Status:       string(rec.Status),
		AdminComment: rec.AdminComment,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Manager != nil {
		view.ManagerName = rec.Manager.GetFullName()
	}
	if rec.WeekStart != nil {
		weekStart := rec.WeekStart.Format("2006-01-02")
		view.WeekStart = &weekStart
	}
	if rec.ReviewedAt != nil {
		reviewed := rec.ReviewedAt.Format(time.RFC3339)
		view.ReviewedAt = &reviewed
	}
	return view
}
