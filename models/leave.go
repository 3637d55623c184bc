package models

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) IsAllowChange(to LeaveStatus) bool {
	if s != LeaveStatusPending {
		return false
	}
	return to == LeaveStatusApproved || to == LeaveStatusRejected
}

type LeaveType string

const (
	LeavePaid   LeaveType = "CONGES_PAYES"
	LeaveUnpaid LeaveType = "SANS_SOLDE"
	LeaveSick   LeaveType = "MALADIE"
	LeaveOther  LeaveType = "AUTRE"
)

var leaveTypeHumanName = map[LeaveType]string{
	LeavePaid:   "Congés payés",
	LeaveUnpaid: "Congé sans solde",
	LeaveSick:   "Arrêt maladie",
	LeaveOther:  "Autre",
}

func (t LeaveType) ToHuman() string {
	if human, exist := leaveTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}
