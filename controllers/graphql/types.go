package graphqlapi

import (
	"github.com/graphql-go/graphql"
)

// Field names follow the json tags of the api view models so the default
// resolver can walk the structs.

var workScheduleType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WorkSchedule",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"employee_id":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee_name": &graphql.Field{Type: graphql.String},
		"date":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"start_time":    &graphql.Field{Type: graphql.String},
		"end_time":      &graphql.Field{Type: graphql.String},
		"shift_type":    &graphql.Field{Type: graphql.String},
		"job_position":  &graphql.Field{Type: graphql.String},
		"is_working":    &graphql.Field{Type: graphql.Boolean},
		"created_at":    &graphql.Field{Type: graphql.String},
	},
})

var adminApprovalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AdminApproval",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"type":          &graphql.Field{Type: graphql.String},
		"reference_id":  &graphql.Field{Type: graphql.String},
		"manager_id":    &graphql.Field{Type: graphql.String},
		"manager_name":  &graphql.Field{Type: graphql.String},
		"employee_id":   &graphql.Field{Type: graphql.String},
		"data":          &graphql.Field{Type: graphql.String},
		"status":        &graphql.Field{Type: graphql.String},
		"admin_comment": &graphql.Field{Type: graphql.String},
		"week_start":    &graphql.Field{Type: graphql.String},
		"created_at":    &graphql.Field{Type: graphql.String},
		"reviewed_at":   &graphql.Field{Type: graphql.String},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"first_name":     &graphql.Field{Type: graphql.String},
		"last_name":      &graphql.Field{Type: graphql.String},
		"email":          &graphql.Field{Type: graphql.String},
		"phone_number":   &graphql.Field{Type: graphql.String},
		"role":           &graphql.Field{Type: graphql.String},
		"role_name":      &graphql.Field{Type: graphql.String},
		"status":         &graphql.Field{Type: graphql.String},
		"job_position":   &graphql.Field{Type: graphql.String},
		"restaurant":     &graphql.Field{Type: graphql.String},
		"hire_date":      &graphql.Field{Type: graphql.String},
		"hourly_rate":    &graphql.Field{Type: graphql.Float},
		"monthly_salary": &graphql.Field{Type: graphql.Float},
		"contract_hours": &graphql.Field{Type: graphql.Int},
		"is_active":      &graphql.Field{Type: graphql.Boolean},
	},
})

var leaveRequestType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LeaveRequest",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"employee_id":   &graphql.Field{Type: graphql.String},
		"employee_name": &graphql.Field{Type: graphql.String},
		"leave_type":    &graphql.Field{Type: graphql.String},
		"leave_name":    &graphql.Field{Type: graphql.String},
		"start_date":    &graphql.Field{Type: graphql.String},
		"end_date":      &graphql.Field{Type: graphql.String},
		"reason":        &graphql.Field{Type: graphql.String},
		"status":        &graphql.Field{Type: graphql.String},
		"admin_comment": &graphql.Field{Type: graphql.String},
		"created_at":    &graphql.Field{Type: graphql.String},
		"reviewed_at":   &graphql.Field{Type: graphql.String},
	},
})

var contractType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Contract",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"employee_id":    &graphql.Field{Type: graphql.String},
		"employee_name":  &graphql.Field{Type: graphql.String},
		"number":         &graphql.Field{Type: graphql.String},
		"contract_type":  &graphql.Field{Type: graphql.String},
		"status":         &graphql.Field{Type: graphql.String},
		"start_date":     &graphql.Field{Type: graphql.String},
		"end_date":       &graphql.Field{Type: graphql.String},
		"job_position":   &graphql.Field{Type: graphql.String},
		"monthly_salary": &graphql.Field{Type: graphql.Float},
		"hourly_rate":    &graphql.Field{Type: graphql.Float},
		"weekly_hours":   &graphql.Field{Type: graphql.Int},
		"has_pdf":        &graphql.Field{Type: graphql.Boolean},
	},
})

var timeClockEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TimeClockEntry",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"employee_id":   &graphql.Field{Type: graphql.String},
		"employee_name": &graphql.Field{Type: graphql.String},
		"date":          &graphql.Field{Type: graphql.String},
		"kind":          &graphql.Field{Type: graphql.String},
		"clocked_at":    &graphql.Field{Type: graphql.String},
	},
})

var notificationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Notification",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"code":       &graphql.Field{Type: graphql.String},
		"msg":        &graphql.Field{Type: graphql.String},
		"is_read":    &graphql.Field{Type: graphql.Boolean},
		"created_at": &graphql.Field{Type: graphql.String},
	},
})

// weekInput maps day keys to shift labels (Matin, Soirée, Doublage, Repos).
var weekInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "WeekInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"monday":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"tuesday":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"wednesday": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"thursday":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"friday":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"saturday":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sunday":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
