package proposalhandler

import (
	"fmt"
	"resto-hr-backend/models"
	employeeapimodels "resto-hr-backend/models/api/employee"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeProposalStore struct {
	created []dbmodels.ManagerWorkSchedule
}

func (f *fakeProposalStore) Create(rec dbmodels.ManagerWorkSchedule) (string, error) {
	rec.ID = fmt.Sprintf("draft-%d", len(f.created)+1)
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeProposalStore) GetByID(id string) (*dbmodels.ManagerWorkSchedule, error) {
	for idx := range f.created {
		if f.created[idx].ID == id {
			return &f.created[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeProposalStore) Delete(id string) error { return nil }
func (f *fakeProposalStore) DeleteByEmployeeWeek(employeeID string, weekStart time.Time) error {
	return nil
}
func (f *fakeProposalStore) List(managerID string) ([]dbmodels.ManagerWorkSchedule, error) {
	return f.created, nil
}

type fakeApprovalStore struct {
	created []dbmodels.AdminApproval
}

func (f *fakeApprovalStore) Create(rec dbmodels.AdminApproval) (string, error) {
	rec.ID = fmt.Sprintf("approval-%d", len(f.created)+1)
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeApprovalStore) GetByID(id string) (*dbmodels.AdminApproval, error) { return nil, nil }
func (f *fakeApprovalStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeApprovalStore) List(status string) ([]dbmodels.AdminApproval, error) { return nil, nil }
func (f *fakeApprovalStore) PendingCount() (int64, error)                         { return 0, nil }

type fakeEmployeeStore struct {
	recs map[string]*dbmodels.Employee
}

func (f *fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return "", nil }
func (f *fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	return f.recs[id], nil
}
func (f *fakeEmployeeStore) GetByEmail(email string) (*dbmodels.Employee, error) { return nil, nil }
func (f *fakeEmployeeStore) ExistByEmail(email string) (bool, error)             { return false, nil }
func (f *fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeEmployeeStore) Delete(id string) error { return nil }
func (f *fakeEmployeeStore) List(filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeStore) ListByRole(role string) ([]dbmodels.Employee, error) { return nil, nil }

func TestStageWeek(t *testing.T) {
	weekStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run(`drafts and one pending approval are staged together`, func(t *testing.T) {
		store := &fakeProposalStore{}
		approvals := &fakeApprovalStore{}
		week := scheduleapimodels.WeekData{
			"monday": models.ShiftMatin,
			"friday": models.ShiftSoiree,
			"sunday": models.ShiftRepos,
		}

		approvalID, err := stageWeek(store, approvals, "manager-1", "emp-1", week, weekStart)
		require.NoError(t, err)
		require.Equal(t, "approval-1", approvalID)
		require.Len(t, store.created, 3)

		monday := store.created[0]
		require.Equal(t, "draft-1", monday.ID)
		require.Equal(t, weekStart, monday.Date)
		require.Equal(t, models.ShiftMatin, monday.ShiftType)
		require.True(t, monday.IsWorking)
		require.Equal(t, "09:00", *monday.StartTime)

		sunday := store.created[2]
		require.Equal(t, weekStart.AddDate(0, 0, 6), sunday.Date)
		require.Equal(t, models.ShiftRepos, sunday.ShiftType)
		require.False(t, sunday.IsWorking)
		require.Nil(t, sunday.StartTime)

		require.Len(t, approvals.created, 1)
		approval := approvals.created[0]
		require.Equal(t, models.ApprovalTypeScheduleChange, approval.Type)
		require.Equal(t, models.ApprovalStatusPending, approval.Status)
		require.Equal(t, "manager-1", approval.ManagerID)
		require.Equal(t, "emp-1", approval.EmployeeID)
		require.NotNil(t, approval.ReferenceID)
		require.Equal(t, "draft-1", *approval.ReferenceID)
		require.NotNil(t, approval.WeekStart)
		require.Equal(t, weekStart, *approval.WeekStart)

		parsed, err := scheduleapimodels.ParseWeekData(approval.Data)
		require.NoError(t, err)
		require.Equal(t, week, parsed)
	})
}

func TestSubmitWeekValidation(t *testing.T) {
	handler := impl{
		store:         &fakeProposalStore{},
		employeeStore: &fakeEmployeeStore{recs: map[string]*dbmodels.Employee{}},
	}

	t.Run(`invalid payload is a soft failure`, func(t *testing.T) {
		_, hMsg, err := handler.SubmitWeek("manager-1", scheduleapimodels.WeekSubmitData{})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`unknown employee is a soft failure`, func(t *testing.T) {
		data := scheduleapimodels.WeekSubmitData{
			EmployeeID: "ghost",
			Week:       map[string]string{"monday": "Matin"},
		}
		_, hMsg, err := handler.SubmitWeek("manager-1", data)
		require.NoError(t, err)
		require.Equal(t, "employee not found", hMsg)
	})

	t.Run(`week of empty labels is a soft failure`, func(t *testing.T) {
		employee := dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "emp-1"}}
		handler := impl{
			store:         &fakeProposalStore{},
			employeeStore: &fakeEmployeeStore{recs: map[string]*dbmodels.Employee{"emp-1": &employee}},
		}
		data := scheduleapimodels.WeekSubmitData{
			EmployeeID: "emp-1",
			Week:       map[string]string{"monday": ""},
		}
		_, hMsg, err := handler.SubmitWeek("manager-1", data)
		require.NoError(t, err)
		require.Equal(t, "week payload is empty", hMsg)
	})
}

func TestCreateDraft(t *testing.T) {
	employee := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: "emp-1"},
		FirstName: "Jean",
		LastName:  "Dupont",
	}
	handler := impl{
		store:         &fakeProposalStore{},
		employeeStore: &fakeEmployeeStore{recs: map[string]*dbmodels.Employee{"emp-1": &employee}},
	}

	t.Run(`draft is stored with the manager`, func(t *testing.T) {
		startTime := "09:00"
		endTime := "18:00"
		view, hMsg, err := handler.CreateDraft("manager-1", scheduleapimodels.WorkScheduleData{
			EmployeeID: "emp-1",
			Date:       "2024-06-03",
			ShiftType:  "Matin",
			StartTime:  &startTime,
			EndTime:    &endTime,
			IsWorking:  true,
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.NotNil(t, view)
		require.Equal(t, "draft-1", view.ID)
		require.Equal(t, "2024-06-03", view.Date)
		require.Equal(t, "Matin", view.ShiftType)
	})

	t.Run(`validation failure is soft`, func(t *testing.T) {
		_, hMsg, err := handler.CreateDraft("manager-1", scheduleapimodels.WorkScheduleData{})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`unknown employee is soft`, func(t *testing.T) {
		_, hMsg, err := handler.CreateDraft("manager-1", scheduleapimodels.WorkScheduleData{
			EmployeeID: "ghost",
			Date:       "2024-06-03",
		})
		require.NoError(t, err)
		require.Equal(t, "employee not found", hMsg)
	})
}
