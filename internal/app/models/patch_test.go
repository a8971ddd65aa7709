package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentPatchCohortNullClearsReference(t *testing.T) {
	ref := "66f1c2a4e13b2a0012ab34cd"

	tests := []struct {
		name    string
		body    string
		want    *string
		cleared bool
	}{
		{name: "absent keeps reference", body: `{"lastName":"King"}`, want: &ref},
		{name: "null clears reference", body: `{"cohort": null}`, cleared: true},
		{name: "empty string clears reference", body: `{"cohort":""}`},
		{name: "new reference replaces", body: `{"cohort":"66f1c2a4e13b2a0012ab34ce"}`, want: strPtr("66f1c2a4e13b2a0012ab34ce")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch StudentPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			assert.Equal(t, tt.cleared, patch.ClearCohort)

			student := &Student{FirstName: "Ada", CohortID: strPtr(ref)}
			patch.Apply(student)
			assert.Equal(t, tt.want, student.CohortID)
		})
	}
}

func TestCohortPatchNullDatesClear(t *testing.T) {
	start := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)
	cohort := &Cohort{CohortName: "Web Dev 101", StartDate: &start, EndDate: &end, Campus: "Madrid"}

	var patch CohortPatch
	require.NoError(t, json.Unmarshal([]byte(`{"startDate":null,"campus":"Paris"}`), &patch))
	assert.True(t, patch.ClearStartDate)
	assert.False(t, patch.ClearEndDate)

	patch.Apply(cohort)
	assert.Nil(t, cohort.StartDate)
	require.NotNil(t, cohort.EndDate)
	assert.Equal(t, end, *cohort.EndDate)
	assert.Equal(t, "Paris", cohort.Campus)
	assert.Equal(t, "Web Dev 101", cohort.CohortName)
}

func TestPatchRejectsNonObject(t *testing.T) {
	var patch StudentPatch
	assert.Error(t, json.Unmarshal([]byte(`["cohort"]`), &patch))
}

func strPtr(s string) *string { return &s }
