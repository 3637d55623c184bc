package graphqlapi

import (
	contracthandler "resto-hr-backend/lib/contract"
	employeehandler "resto-hr-backend/lib/employee"
	leavehandler "resto-hr-backend/lib/leave"
	notificationhandler "resto-hr-backend/lib/notification"
	timeclockhandler "resto-hr-backend/lib/timeclock"
	contractapimodels "resto-hr-backend/models/api/contract"
	employeeapimodels "resto-hr-backend/models/api/employee"
	leaveapimodels "resto-hr-backend/models/api/leave"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

func hrMutations() graphql.Fields {
	return graphql.Fields{
		"createEmployee": &graphql.Field{
			Type: employeeType,
			Args: graphql.FieldConfigArgument{
				"first_name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"last_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"role":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"phone_number":   &graphql.ArgumentConfig{Type: graphql.String},
				"job_position":   &graphql.ArgumentConfig{Type: graphql.String},
				"restaurant":     &graphql.ArgumentConfig{Type: graphql.String},
				"hire_date":      &graphql.ArgumentConfig{Type: graphql.String},
				"hourly_rate":    &graphql.ArgumentConfig{Type: graphql.Float},
				"monthly_salary": &graphql.ArgumentConfig{Type: graphql.Float},
				"contract_hours": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				view, hMsg, err := employeehandler.Instance.Create(employeeDataFromArgs(p))
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"updateEmployee": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"first_name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"last_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"role":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":       &graphql.ArgumentConfig{Type: graphql.String},
				"phone_number":   &graphql.ArgumentConfig{Type: graphql.String},
				"job_position":   &graphql.ArgumentConfig{Type: graphql.String},
				"restaurant":     &graphql.ArgumentConfig{Type: graphql.String},
				"hire_date":      &graphql.ArgumentConfig{Type: graphql.String},
				"hourly_rate":    &graphql.ArgumentConfig{Type: graphql.Float},
				"monthly_salary": &graphql.ArgumentConfig{Type: graphql.Float},
				"contract_hours": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := employeehandler.Instance.Update(stringArg(p, "id"), employeeDataFromArgs(p))
				return resolveFlag(hMsg, err)
			},
		},
		"deactivateEmployee": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := employeehandler.Instance.Deactivate(stringArg(p, "id"))
				return resolveFlag(hMsg, err)
			},
		},
		"createLeaveRequest": &graphql.Field{
			Type: leaveRequestType,
			Args: graphql.FieldConfigArgument{
				"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
				"leave_type":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"start_date":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"end_date":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"reason":      &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				data := leaveapimodels.LeaveRequestData{
					EmployeeID: stringArg(p, "employee_id"),
					LeaveType:  stringArg(p, "leave_type"),
					StartDate:  stringArg(p, "start_date"),
					EndDate:    stringArg(p, "end_date"),
					Reason:     stringArg(p, "reason"),
				}
				// employees raise requests for themselves, managers for anyone
				if data.EmployeeID == "" || requireManager(p.Context) != nil {
					data.EmployeeID = userID(p.Context)
				}
				view, hMsg, err := leavehandler.Instance.Create(data)
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"approveLeaveRequest": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := leavehandler.Instance.Approve(userID(p.Context), stringArg(p, "id"))
				return resolveFlag(hMsg, err)
			},
		},
		"rejectLeaveRequest": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"comment": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := leavehandler.Instance.Reject(userID(p.Context), stringArg(p, "id"), optStringArg(p, "comment"))
				return resolveFlag(hMsg, err)
			},
		},
		"createContract": &graphql.Field{
			Type: contractType,
			Args: graphql.FieldConfigArgument{
				"employee_id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"contract_type":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"start_date":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"end_date":       &graphql.ArgumentConfig{Type: graphql.String},
				"job_position":   &graphql.ArgumentConfig{Type: graphql.String},
				"monthly_salary": &graphql.ArgumentConfig{Type: graphql.Float},
				"hourly_rate":    &graphql.ArgumentConfig{Type: graphql.Float},
				"weekly_hours":   &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				monthlySalary, _ := p.Args["monthly_salary"].(float64)
				hourlyRate, _ := p.Args["hourly_rate"].(float64)
				weeklyHours, _ := p.Args["weekly_hours"].(int)
				data := contractapimodels.ContractData{
					EmployeeID:    stringArg(p, "employee_id"),
					ContractType:  stringArg(p, "contract_type"),
					StartDate:     stringArg(p, "start_date"),
					EndDate:       stringArg(p, "end_date"),
					JobPosition:   stringArg(p, "job_position"),
					MonthlySalary: monthlySalary,
					HourlyRate:    hourlyRate,
					WeeklyHours:   weeklyHours,
				}
				view, hMsg, err := contracthandler.Instance.Create(data)
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"terminateContract": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := contracthandler.Instance.Terminate(stringArg(p, "id"))
				return resolveFlag(hMsg, err)
			},
		},
		"generateContractPdf": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := contracthandler.Instance.GeneratePdf(p.Context, stringArg(p, "id"))
				return resolveFlag(hMsg, err)
			},
		},
		"clockInOut": &graphql.Field{
			Type: timeClockEntryType,
			Args: graphql.FieldConfigArgument{
				"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				employeeID := stringArg(p, "employee_id")
				if employeeID == "" || requireManager(p.Context) != nil {
					employeeID = userID(p.Context)
				}
				view, hMsg, err := timeclockhandler.Instance.Clock(employeeID)
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"markNotificationRead": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				err := notificationhandler.Instance.MarkRead(userID(p.Context), stringArg(p, "id"))
				if err != nil {
					return false, err
				}
				return true, nil
			},
		},
	}
}

func employeeDataFromArgs(p graphql.ResolveParams) employeeapimodels.EmployeeData {
	hourlyRate, _ := p.Args["hourly_rate"].(float64)
	monthlySalary, _ := p.Args["monthly_salary"].(float64)
	contractHours, _ := p.Args["contract_hours"].(int)
	return employeeapimodels.EmployeeData{
		FirstName:     stringArg(p, "first_name"),
		LastName:      stringArg(p, "last_name"),
		Email:         stringArg(p, "email"),
		PhoneNumber:   stringArg(p, "phone_number"),
		Role:          stringArg(p, "role"),
		JobPosition:   stringArg(p, "job_position"),
		Restaurant:    stringArg(p, "restaurant"),
		HireDate:      stringArg(p, "hire_date"),
		HourlyRate:    hourlyRate,
		MonthlySalary: monthlySalary,
		ContractHours: contractHours,
		Password:      stringArg(p, "password"),
	}
}
