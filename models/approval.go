package models

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsAllowChange guards approval transitions: only a pending record can be
// resolved, and resolved records are terminal.
func (s ApprovalStatus) IsAllowChange(to ApprovalStatus) bool {
	if s != ApprovalStatusPending {
		return false
	}
	return to == ApprovalStatusApproved || to == ApprovalStatusRejected
}

const ApprovalTypeScheduleChange = "schedule_change"
