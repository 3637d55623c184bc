package graphqlapi

import (
	approvalhandler "resto-hr-backend/lib/approval"
	contracthandler "resto-hr-backend/lib/contract"
	employeehandler "resto-hr-backend/lib/employee"
	leavehandler "resto-hr-backend/lib/leave"
	notificationhandler "resto-hr-backend/lib/notification"
	schedulehandler "resto-hr-backend/lib/schedule"
	proposalhandler "resto-hr-backend/lib/schedule/proposal"
	timeclockhandler "resto-hr-backend/lib/timeclock"
	employeeapimodels "resto-hr-backend/models/api/employee"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	timeclockapimodels "resto-hr-backend/models/api/timeclock"

	"github.com/graphql-go/graphql"
	log "github.com/sirupsen/logrus"
)

func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType(),
		Mutation: mutationType(),
	})
}

func queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"workSchedules": &graphql.Field{
				Type: graphql.NewList(workScheduleType),
				Args: graphql.FieldConfigArgument{
					"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
					"date":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				// read errors degrade to an empty list, the schedule screen
				// must render even when the store hiccups
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter := scheduleapimodels.ScheduleFilter{
						EmployeeID: stringArg(p, "employee_id"),
						Date:       stringArg(p, "date"),
					}
					list, err := schedulehandler.Instance.List(filter)
					if err != nil {
						log.WithError(err).Error("work schedules fetch failed")
						return []scheduleapimodels.WorkScheduleView{}, nil
					}
					return list, nil
				},
			},
			"managerWorkSchedules": &graphql.Field{
				Type: graphql.NewList(workScheduleType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireManager(p.Context); err != nil {
						return nil, err
					}
					list, err := proposalhandler.Instance.ListDrafts(userID(p.Context))
					if err != nil {
						log.WithError(err).Error("draft schedules fetch failed")
						return []scheduleapimodels.WorkScheduleView{}, nil
					}
					return list, nil
				},
			},
			"adminApprovals": &graphql.Field{
				Type: graphql.NewList(adminApprovalType),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return approvalhandler.Instance.List(stringArg(p, "status"))
				},
			},
			"employees": &graphql.Field{
				Type: graphql.NewList(employeeType),
				Args: graphql.FieldConfigArgument{
					"restaurant":  &graphql.ArgumentConfig{Type: graphql.String},
					"role":        &graphql.ArgumentConfig{Type: graphql.String},
					"only_active": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireManager(p.Context); err != nil {
						return nil, err
					}
					onlyActive, _ := p.Args["only_active"].(bool)
					return employeehandler.Instance.List(employeeapimodels.EmployeeFilter{
						Restaurant: stringArg(p, "restaurant"),
						Role:       stringArg(p, "role"),
						OnlyActive: onlyActive,
					})
				},
			},
			"employee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireManager(p.Context); err != nil {
						return nil, err
					}
					return employeehandler.Instance.Get(stringArg(p, "id"))
				},
			},
			"me": &graphql.Field{
				Type: employeeType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return employeehandler.Instance.Get(userID(p.Context))
				},
			},
			"leaveRequests": &graphql.Field{
				Type: graphql.NewList(leaveRequestType),
				Args: graphql.FieldConfigArgument{
					"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
					"status":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					employeeID := stringArg(p, "employee_id")
					if err := requireManager(p.Context); err != nil {
						// employees only see their own requests
						employeeID = userID(p.Context)
					}
					return leavehandler.Instance.List(employeeID, stringArg(p, "status"))
				},
			},
			"contracts": &graphql.Field{
				Type: graphql.NewList(contractType),
				Args: graphql.FieldConfigArgument{
					"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := requireAdmin(p.Context); err != nil {
						return nil, err
					}
					return contracthandler.Instance.List(stringArg(p, "employee_id"))
				},
			},
			"timeClockEntries": &graphql.Field{
				Type: graphql.NewList(timeClockEntryType),
				Args: graphql.FieldConfigArgument{
					"employee_id": &graphql.ArgumentConfig{Type: graphql.String},
					"date_from":   &graphql.ArgumentConfig{Type: graphql.String},
					"date_to":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					employeeID := stringArg(p, "employee_id")
					if err := requireManager(p.Context); err != nil {
						employeeID = userID(p.Context)
					}
					return timeclockhandler.Instance.List(timeclockapimodels.TimeClockFilter{
						EmployeeID: employeeID,
						DateFrom:   stringArg(p, "date_from"),
						DateTo:     stringArg(p, "date_to"),
					})
				},
			},
			"notifications": &graphql.Field{
				Type: graphql.NewList(notificationType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return notificationhandler.Instance.List(userID(p.Context))
				},
			},
			"unreadNotificationCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return notificationhandler.Instance.UnreadCount(userID(p.Context))
				},
			},
		},
	})
}

func mutationType() *graphql.Object {
	fields := graphql.Fields{}
	for name, field := range scheduleMutations() {
		fields[name] = field
	}
	for name, field := range hrMutations() {
		fields[name] = field
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: fields,
	})
}
