package scheduleapimodels

import (
	"resto-hr-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWeekData(t *testing.T) {
	t.Run(`full week parse check`, func(t *testing.T) {
		raw := `{"monday":"Matin","tuesday":"Soirée","wednesday":"Doublage","thursday":"Repos","friday":"Matin","saturday":"Soirée","sunday":"Repos"}`
		week, err := ParseWeekData(raw)
		require.NoError(t, err)
		require.Len(t, week, 7)
		require.Equal(t, models.ShiftMatin, week["monday"])
		require.Equal(t, models.ShiftRepos, week["sunday"])
	})

	t.Run(`malformed json is an error`, func(t *testing.T) {
		_, err := ParseWeekData(`{"monday": `)
		require.Error(t, err)
	})

	t.Run(`unknown shift label is an error`, func(t *testing.T) {
		_, err := ParseWeekData(`{"monday":"Nuit"}`)
		require.Error(t, err)
	})

	t.Run(`unknown day keys are skipped`, func(t *testing.T) {
		week, err := ParseWeekData(`{"monday":"Matin","lundi":"Matin"}`)
		require.NoError(t, err)
		require.Len(t, week, 1)
	})

	t.Run(`empty labels are skipped`, func(t *testing.T) {
		week, err := ParseWeekData(`{"monday":"Matin","tuesday":""}`)
		require.NoError(t, err)
		require.Len(t, week, 1)
	})

	t.Run(`encode round trip check`, func(t *testing.T) {
		week := WeekData{"monday": models.ShiftMatin, "friday": models.ShiftDoublage}
		raw, err := week.Encode()
		require.NoError(t, err)
		parsed, err := ParseWeekData(raw)
		require.NoError(t, err)
		require.Equal(t, week, parsed)
	})
}

func TestWeekSubmitDataValidate(t *testing.T) {
	valid := WeekSubmitData{
		EmployeeID: "emp-1",
		Week:       map[string]string{"monday": "Matin", "tuesday": "Repos"},
	}

	t.Run(`valid payload check`, func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run(`employee required`, func(t *testing.T) {
		data := valid
		data.EmployeeID = ""
		require.Error(t, data.Validate())
	})

	t.Run(`empty week rejected`, func(t *testing.T) {
		data := valid
		data.Week = map[string]string{}
		require.Error(t, data.Validate())
	})

	t.Run(`unknown day key rejected`, func(t *testing.T) {
		data := valid
		data.Week = map[string]string{"lundi": "Matin"}
		require.Error(t, data.Validate())
	})

	t.Run(`unknown label rejected`, func(t *testing.T) {
		data := valid
		data.Week = map[string]string{"monday": "Nuit"}
		require.Error(t, data.Validate())
	})

	t.Run(`week start format check`, func(t *testing.T) {
		data := valid
		data.WeekStart = "03.06.2024"
		require.Error(t, data.Validate())
		data.WeekStart = "2024-06-03"
		require.NoError(t, data.Validate())
	})
}

func TestWorkScheduleDataValidate(t *testing.T) {
	t.Run(`valid day check`, func(t *testing.T) {
		data := WorkScheduleData{EmployeeID: "emp-1", Date: "2024-06-03", ShiftType: "Matin"}
		require.NoError(t, data.Validate())
	})

	t.Run(`bad date rejected`, func(t *testing.T) {
		data := WorkScheduleData{EmployeeID: "emp-1", Date: "03/06/2024"}
		require.Error(t, data.Validate())
	})

	t.Run(`unknown shift rejected`, func(t *testing.T) {
		data := WorkScheduleData{EmployeeID: "emp-1", Date: "2024-06-03", ShiftType: "Nuit"}
		require.Error(t, data.Validate())
	})
}
