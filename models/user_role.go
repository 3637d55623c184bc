package models

type UserRole string

const (
	AdminRole    UserRole = "ADMIN_ROLE"
	ManagerRole  UserRole = "MANAGER_ROLE"
	EmployeeRole UserRole = "EMPLOYEE_ROLE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Administrateur",
	ManagerRole:  "Manager",
	EmployeeRole: "Employé",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

func (r UserRole) IsManager() bool {
	return r == ManagerRole
}

type EmployeeStatus string

const (
	EmployeeWorkingStatus   EmployeeStatus = "WORKING"
	EmployeeOnLeaveStatus   EmployeeStatus = "ON_LEAVE"
	EmployeeDismissedStatus EmployeeStatus = "DISMISSED"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeWorkingStatus:   "En poste",
	EmployeeOnLeaveStatus:   "En congé",
	EmployeeDismissedStatus: "Parti",
}

func (r EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
