package graphqlapi

import (
	approvalhandler "resto-hr-backend/lib/approval"
	schedulehandler "resto-hr-backend/lib/schedule"
	proposalhandler "resto-hr-backend/lib/schedule/proposal"
	"resto-hr-backend/models"
	scheduleapimodels "resto-hr-backend/models/api/schedule"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var scheduleDataArgs = graphql.FieldConfigArgument{
	"employee_id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	"date":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	"shift_type":   &graphql.ArgumentConfig{Type: graphql.String},
	"start_time":   &graphql.ArgumentConfig{Type: graphql.String},
	"end_time":     &graphql.ArgumentConfig{Type: graphql.String},
	"job_position": &graphql.ArgumentConfig{Type: graphql.String},
	"is_working":   &graphql.ArgumentConfig{Type: graphql.Boolean},
}

func scheduleDataFromArgs(p graphql.ResolveParams) scheduleapimodels.WorkScheduleData {
	isWorking, ok := p.Args["is_working"].(bool)
	if !ok {
		// a day with a working shift label defaults to working
		isWorking = models.ShiftLabel(stringArg(p, "shift_type")) != models.ShiftRepos
	}
	data := scheduleapimodels.WorkScheduleData{
		EmployeeID:  stringArg(p, "employee_id"),
		Date:        stringArg(p, "date"),
		ShiftType:   stringArg(p, "shift_type"),
		StartTime:   optStringArg(p, "start_time"),
		EndTime:     optStringArg(p, "end_time"),
		JobPosition: optStringArg(p, "job_position"),
		IsWorking:   isWorking,
	}
	if data.StartTime == nil && data.ShiftType != "" {
		if times, working := models.ShiftLabel(data.ShiftType).GetTimes(); working {
			data.StartTime = &times.StartTime
			data.EndTime = &times.EndTime
		}
	}
	return data
}

// resolveFlag maps a handler outcome to the Boolean the legacy clients
// expect: soft failures come back as false, infra errors as graphql errors.
func resolveFlag(hMsg string, err error) (interface{}, error) {
	if err != nil {
		return false, err
	}
	if hMsg != "" {
		log.WithField("reason", hMsg).Info("operation refused")
		return false, nil
	}
	return true, nil
}

func scheduleMutations() graphql.Fields {
	return graphql.Fields{
		"createManagerWorkSchedule": &graphql.Field{
			Type: workScheduleType,
			Args: scheduleDataArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireManager(p.Context); err != nil {
					return nil, err
				}
				view, hMsg, err := proposalhandler.Instance.CreateDraft(userID(p.Context), scheduleDataFromArgs(p))
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"sendApprovalRequest": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"type":         &graphql.ArgumentConfig{Type: graphql.String},
				"reference_id": &graphql.ArgumentConfig{Type: graphql.ID},
				"manager_id":   &graphql.ArgumentConfig{Type: graphql.String},
				"data":         &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireManager(p.Context); err != nil {
					return nil, err
				}
				managerID := userID(p.Context)
				// admins may raise a request on another manager's behalf
				if override := stringArg(p, "manager_id"); override != "" && requireAdmin(p.Context) == nil {
					managerID = override
				}
				if data := stringArg(p, "data"); data != "" {
					if _, err := scheduleapimodels.ParseWeekData(data); err != nil {
						return resolveFlag("invalid proposal payload", nil)
					}
					approvalType := stringArg(p, "type")
					if approvalType == "" {
						approvalType = models.ApprovalTypeScheduleChange
					}
					_, err := approvalhandler.Instance.CreateRequest(
						approvalType, optStringArg(p, "reference_id"), managerID, "", data, nil)
					return resolveFlag("", err)
				}
				referenceID := stringArg(p, "reference_id")
				if referenceID == "" {
					return resolveFlag("reference is not specified", nil)
				}
				_, hMsg, err := proposalhandler.Instance.SendApprovalRequest(managerID, referenceID)
				return resolveFlag(hMsg, err)
			},
		},
		"submitWeeklySchedule": &graphql.Field{
			Type: graphql.ID,
			Args: graphql.FieldConfigArgument{
				"employee_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"week":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(weekInput)},
				"week_start":  &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireManager(p.Context); err != nil {
					return nil, err
				}
				week := map[string]string{}
				if rawWeek, ok := p.Args["week"].(map[string]interface{}); ok {
					for day, label := range rawWeek {
						if value, ok := label.(string); ok {
							week[day] = value
						}
					}
				}
				data := scheduleapimodels.WeekSubmitData{
					EmployeeID: stringArg(p, "employee_id"),
					Week:       week,
					WeekStart:  stringArg(p, "week_start"),
				}
				approvalID, hMsg, err := proposalhandler.Instance.SubmitWeek(userID(p.Context), data)
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return approvalID, nil
			},
		},
		"approveScheduleChange": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"approval_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: resolveApprove,
		},
		"rejectScheduleChange": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"approval_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"comment":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: resolveReject,
		},
		// legacy names kept for older clients, same semantics
		"approveManagerSchedule": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"approval_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: resolveApprove,
		},
		"rejectManagerSchedule": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"approval_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"comment":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: resolveReject,
		},
		"createWorkSchedule": &graphql.Field{
			Type: workScheduleType,
			Args: scheduleDataArgs,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				view, hMsg, err := schedulehandler.Instance.Upsert(scheduleDataFromArgs(p))
				if err != nil {
					return nil, err
				}
				if hMsg != "" {
					return nil, errors.New(hMsg)
				}
				return view, nil
			},
		},
		"updateWorkSchedule": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"shift_type":   &graphql.ArgumentConfig{Type: graphql.String},
				"start_time":   &graphql.ArgumentConfig{Type: graphql.String},
				"end_time":     &graphql.ArgumentConfig{Type: graphql.String},
				"job_position": &graphql.ArgumentConfig{Type: graphql.String},
				"is_working":   &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				isWorking, _ := p.Args["is_working"].(bool)
				data := scheduleapimodels.WorkScheduleData{
					ShiftType:   stringArg(p, "shift_type"),
					StartTime:   optStringArg(p, "start_time"),
					EndTime:     optStringArg(p, "end_time"),
					JobPosition: optStringArg(p, "job_position"),
					IsWorking:   isWorking,
				}
				hMsg, err := schedulehandler.Instance.Update(stringArg(p, "id"), data)
				return resolveFlag(hMsg, err)
			},
		},
		"deleteWorkSchedule": &graphql.Field{
			Type: graphql.Boolean,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if err := requireAdmin(p.Context); err != nil {
					return nil, err
				}
				hMsg, err := schedulehandler.Instance.Delete(stringArg(p, "id"))
				return resolveFlag(hMsg, err)
			},
		},
	}
}

func resolveApprove(p graphql.ResolveParams) (interface{}, error) {
	if err := requireAdmin(p.Context); err != nil {
		return nil, err
	}
	hMsg, err := approvalhandler.Instance.Approve(stringArg(p, "approval_id"))
	return resolveFlag(hMsg, err)
}

func resolveReject(p graphql.ResolveParams) (interface{}, error) {
	if err := requireAdmin(p.Context); err != nil {
		return nil, err
	}
	hMsg, err := approvalhandler.Instance.Reject(stringArg(p, "approval_id"), optStringArg(p, "comment"))
	return resolveFlag(hMsg, err)
}
