package approvalhandler

import (
	"fmt"
	"resto-hr-backend/models"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	dbmodels "resto-hr-backend/models/db"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeApprovalStore struct {
	recs    map[string]*dbmodels.AdminApproval
	updates map[string]map[string]interface{}
	getErr  error
}

func newFakeApprovalStore(recs ...dbmodels.AdminApproval) *fakeApprovalStore {
	store := &fakeApprovalStore{
		recs:    map[string]*dbmodels.AdminApproval{},
		updates: map[string]map[string]interface{}{},
	}
	for idx := range recs {
		rec := recs[idx]
		store.recs[rec.ID] = &rec
	}
	return store
}

func (f *fakeApprovalStore) Create(rec dbmodels.AdminApproval) (string, error) {
	rec.ID = fmt.Sprintf("approval-%d", len(f.recs)+1)
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApprovalStore) GetByID(id string) (*dbmodels.AdminApproval, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.recs[id], nil
}

func (f *fakeApprovalStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeApprovalStore) List(status string) ([]dbmodels.AdminApproval, error) {
	list := []dbmodels.AdminApproval{}
	for _, rec := range f.recs {
		if status == "" || string(rec.Status) == status {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeApprovalStore) PendingCount() (int64, error) {
	var count int64
	for _, rec := range f.recs {
		if rec.Status == models.ApprovalStatusPending {
			count++
		}
	}
	return count, nil
}

type fakeScheduleStore struct {
	upserts   []dbmodels.WorkSchedule
	upsertErr error
}

func (f *fakeScheduleStore) Upsert(rec dbmodels.WorkSchedule) (string, error) {
	if f.upsertErr != nil {
		return "", f.upsertErr
	}
	f.upserts = append(f.upserts, rec)
	return fmt.Sprintf("schedule-%d", len(f.upserts)), nil
}

func (f *fakeScheduleStore) GetByID(id string) (*dbmodels.WorkSchedule, error) { return nil, nil }
func (f *fakeScheduleStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeScheduleStore) Delete(id string) error { return nil }
func (f *fakeScheduleStore) List(filter scheduleapimodels.ScheduleFilter) ([]dbmodels.WorkSchedule, error) {
	return nil, nil
}
func (f *fakeScheduleStore) ListByDateRange(from, to time.Time) ([]dbmodels.WorkSchedule, error) {
	return nil, nil
}

type fakeProposalStore struct {
	drafts       map[string]*dbmodels.ManagerWorkSchedule
	deletedIDs   []string
	deletedWeeks []string
}

func newFakeProposalStore(drafts ...dbmodels.ManagerWorkSchedule) *fakeProposalStore {
	store := &fakeProposalStore{drafts: map[string]*dbmodels.ManagerWorkSchedule{}}
	for idx := range drafts {
		draft := drafts[idx]
		store.drafts[draft.ID] = &draft
	}
	return store
}

func (f *fakeProposalStore) Create(rec dbmodels.ManagerWorkSchedule) (string, error) {
	rec.ID = fmt.Sprintf("draft-%d", len(f.drafts)+1)
	f.drafts[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeProposalStore) GetByID(id string) (*dbmodels.ManagerWorkSchedule, error) {
	return f.drafts[id], nil
}

func (f *fakeProposalStore) Delete(id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.drafts, id)
	return nil
}

func (f *fakeProposalStore) DeleteByEmployeeWeek(employeeID string, weekStart time.Time) error {
	f.deletedWeeks = append(f.deletedWeeks, fmt.Sprintf("%s@%s", employeeID, weekStart.Format("2006-01-02")))
	return nil
}

func (f *fakeProposalStore) List(managerID string) ([]dbmodels.ManagerWorkSchedule, error) {
	return nil, nil
}

func pendingApproval(id, data string) dbmodels.AdminApproval {
	return dbmodels.AdminApproval{
		BaseModel:  dbmodels.BaseModel{ID: id},
		Type:       models.ApprovalTypeScheduleChange,
		ManagerID:  "manager-1",
		EmployeeID: "emp-1",
		Data:       data,
		Status:     models.ApprovalStatusPending,
	}
}

func TestApproveGuards(t *testing.T) {
	t.Run(`missing approval is a soft failure`, func(t *testing.T) {
		handler := impl{store: newFakeApprovalStore()}
		hMsg, err := handler.Approve("nope")
		require.NoError(t, err)
		require.Equal(t, "approval request not found", hMsg)
	})

	t.Run(`already resolved approval is a soft no-op`, func(t *testing.T) {
		rec := pendingApproval("a1", `{"monday":"Matin"}`)
		rec.Status = models.ApprovalStatusApproved
		store := newFakeApprovalStore(rec)
		handler := impl{store: store}
		hMsg, err := handler.Approve("a1")
		require.NoError(t, err)
		require.Equal(t, "approval request is already resolved", hMsg)
		require.Empty(t, store.updates)
	})

	t.Run(`malformed payload leaves the approval pending`, func(t *testing.T) {
		store := newFakeApprovalStore(pendingApproval("a1", `{"monday": `))
		handler := impl{store: store}
		hMsg, err := handler.Approve("a1")
		require.NoError(t, err)
		require.Equal(t, "invalid proposal payload", hMsg)
		require.Empty(t, store.updates)
		require.Equal(t, models.ApprovalStatusPending, store.recs["a1"].Status)
	})

	t.Run(`empty payload without reference is refused`, func(t *testing.T) {
		store := newFakeApprovalStore(pendingApproval("a1", ""))
		handler := impl{store: store}
		hMsg, err := handler.Approve("a1")
		require.NoError(t, err)
		require.Equal(t, "proposal payload is empty", hMsg)
	})

	t.Run(`store error propagates`, func(t *testing.T) {
		store := newFakeApprovalStore()
		store.getErr = errors.New("db down")
		handler := impl{store: store}
		hMsg, err := handler.Approve("a1")
		require.Error(t, err)
		require.Empty(t, hMsg)
	})
}

func TestRejectKeepsScheduleUntouched(t *testing.T) {
	t.Run(`reject only updates the approval row`, func(t *testing.T) {
		store := newFakeApprovalStore(pendingApproval("a1", `{"monday":"Matin"}`))
		handler := impl{store: store}
		comment := "effectif insuffisant"
		hMsg, err := handler.Reject("a1", &comment)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		updMap, ok := store.updates["a1"]
		require.True(t, ok)
		require.Equal(t, models.ApprovalStatusRejected, updMap["status"])
		require.Equal(t, &comment, updMap["admin_comment"])
		require.NotNil(t, updMap["reviewed_at"])
	})

	t.Run(`double reject is a soft no-op`, func(t *testing.T) {
		rec := pendingApproval("a1", "")
		rec.Status = models.ApprovalStatusRejected
		store := newFakeApprovalStore(rec)
		handler := impl{store: store}
		hMsg, err := handler.Reject("a1", nil)
		require.NoError(t, err)
		require.Equal(t, "approval request is already resolved", hMsg)
		require.Empty(t, store.updates)
	})
}

func TestMaterializeWeek(t *testing.T) {
	weekStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run(`working days become schedule rows, repos does not`, func(t *testing.T) {
		scheduleStore := &fakeScheduleStore{}
		proposalStore := newFakeProposalStore()
		approvalStore := newFakeApprovalStore()
		rec := pendingApproval("a1", "")
		week := scheduleapimodels.WeekData{
			"monday":    models.ShiftMatin,
			"tuesday":   models.ShiftRepos,
			"wednesday": models.ShiftSoiree,
		}

		err := materializeWeek(scheduleStore, proposalStore, approvalStore, rec, week, weekStart)
		require.NoError(t, err)
		require.Len(t, scheduleStore.upserts, 2)

		monday := scheduleStore.upserts[0]
		require.Equal(t, "emp-1", monday.EmployeeID)
		require.Equal(t, weekStart, monday.Date)
		require.Equal(t, models.ShiftMatin, monday.ShiftType)
		require.Equal(t, "09:00", *monday.StartTime)
		require.Equal(t, "18:00", *monday.EndTime)
		require.True(t, monday.IsWorking)

		wednesday := scheduleStore.upserts[1]
		require.Equal(t, weekStart.AddDate(0, 0, 2), wednesday.Date)
		require.Equal(t, models.ShiftSoiree, wednesday.ShiftType)
		require.Equal(t, "18:00", *wednesday.StartTime)
		require.Equal(t, "03:00", *wednesday.EndTime)

		require.Equal(t, []string{"emp-1@2024-06-03"}, proposalStore.deletedWeeks)
		updMap, ok := approvalStore.updates["a1"]
		require.True(t, ok)
		require.Equal(t, models.ApprovalStatusApproved, updMap["status"])
		require.NotNil(t, updMap["reviewed_at"])
	})

	t.Run(`upsert failure aborts before the status update`, func(t *testing.T) {
		scheduleStore := &fakeScheduleStore{upsertErr: errors.New("db down")}
		proposalStore := newFakeProposalStore()
		approvalStore := newFakeApprovalStore()
		week := scheduleapimodels.WeekData{"monday": models.ShiftMatin}

		err := materializeWeek(scheduleStore, proposalStore, approvalStore, pendingApproval("a1", ""), week, weekStart)
		require.Error(t, err)
		require.Empty(t, approvalStore.updates)
		require.Empty(t, proposalStore.deletedWeeks)
	})
}

func TestMaterializeReference(t *testing.T) {
	t.Run(`draft is promoted and removed`, func(t *testing.T) {
		startTime := "09:00"
		endTime := "18:00"
		draft := dbmodels.ManagerWorkSchedule{
			BaseModel:  dbmodels.BaseModel{ID: "draft-1"},
			EmployeeID: "emp-1",
			ManagerID:  "manager-1",
			Date:       time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			StartTime:  &startTime,
			EndTime:    &endTime,
			ShiftType:  models.ShiftMatin,
			IsWorking:  true,
		}
		scheduleStore := &fakeScheduleStore{}
		proposalStore := newFakeProposalStore(draft)
		approvalStore := newFakeApprovalStore()
		referenceID := "draft-1"
		rec := pendingApproval("a1", "")
		rec.ReferenceID = &referenceID

		err := materializeReference(scheduleStore, proposalStore, approvalStore, rec)
		require.NoError(t, err)
		require.Len(t, scheduleStore.upserts, 1)
		require.Equal(t, draft.Date, scheduleStore.upserts[0].Date)
		require.Equal(t, []string{"draft-1"}, proposalStore.deletedIDs)
		require.Equal(t, models.ApprovalStatusApproved, approvalStore.updates["a1"]["status"])
	})

	t.Run(`missing draft is an error and nothing is written`, func(t *testing.T) {
		scheduleStore := &fakeScheduleStore{}
		proposalStore := newFakeProposalStore()
		approvalStore := newFakeApprovalStore()
		referenceID := "gone"
		rec := pendingApproval("a1", "")
		rec.ReferenceID = &referenceID

		err := materializeReference(scheduleStore, proposalStore, approvalStore, rec)
		require.Error(t, err)
		require.Empty(t, scheduleStore.upserts)
		require.Empty(t, approvalStore.updates)
	})
}
