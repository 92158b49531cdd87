package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "eventdeck/pkg/errors"
)

func TestCategoryIDs_UnmarshalJSON_Lenient(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want CategoryIDs
	}{
		{"array", `{"categoryIds":[1,2,3]}`, CategoryIDs{1, 2, 3}},
		{"null", `{"categoryIds":null}`, nil},
		{"missing", `{}`, nil},
		{"string", `{"categoryIds":"oops"}`, nil},
		{"object", `{"categoryIds":{"a":1}}`, nil},
		{"mixed array", `{"categoryIds":[1,"two",3]}`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var event Event
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &event))
			assert.Equal(t, tc.want, event.CategoryIDs)
		})
	}
}

func TestCategoryIDs_IntersectsAny(t *testing.T) {
	ids := CategoryIDs{1, 2}

	assert.True(t, ids.IntersectsAny([]int{2, 9}))
	assert.False(t, ids.IntersectsAny([]int{3, 4}))
	assert.False(t, ids.IntersectsAny(nil))
	assert.False(t, CategoryIDs(nil).IntersectsAny([]int{1}))
}

func TestEvent_Validate(t *testing.T) {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	valid := Event{
		Title:     "Jazz Night",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}

	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.Equal(t, "title", pkgerrors.GetAppError(err).Field())

	equalTimes := valid
	equalTimes.EndTime = equalTimes.StartTime
	err = equalTimes.Validate()
	require.Error(t, err)
	appErr := pkgerrors.GetAppError(err)
	assert.Equal(t, "endTime", appErr.Field())
	assert.Contains(t, appErr.Message, "after startTime")

	reversed := valid
	reversed.StartTime, reversed.EndTime = reversed.EndTime, reversed.StartTime
	assert.Error(t, reversed.Validate())
}

func TestEvent_JSONRoundTripUsesWireNames(t *testing.T) {
	start := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	event := Event{
		ID:          1,
		Title:       "Jazz Night",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		CreatedBy:   7,
		CategoryIDs: CategoryIDs{1},
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"startTime"`)
	assert.Contains(t, string(raw), `"createdBy"`)
	assert.Contains(t, string(raw), `"categoryIds"`)
}

func TestFindUserByName(t *testing.T) {
	users := []User{{ID: 7, Name: "Ada"}, {ID: 8, Name: "ada"}}

	found, ok := FindUserByName(users, "ada")
	assert.True(t, ok)
	assert.Equal(t, 8, found.ID)

	_, ok = FindUserByName(users, "Grace")
	assert.False(t, ok)
}
