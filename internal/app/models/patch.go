package models

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// nullFields returns the top-level keys of a JSON object whose value is null.
func nullFields(data []byte) (map[string]bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	nulls := make(map[string]bool)
	for k, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			nulls[k] = true
		}
	}
	return nulls, nil
}

// UnmarshalJSON decodes the patch and records which nullable fields were sent
// as an explicit null.
func (p *StudentPatch) UnmarshalJSON(data []byte) error {
	type plain StudentPatch
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	nulls, err := nullFields(data)
	if err != nil {
		return err
	}
	p.ClearCohort = nulls["cohort"]
	return nil
}

// UnmarshalJSON decodes the patch and records which dates were sent as an
// explicit null.
func (p *CohortPatch) UnmarshalJSON(data []byte) error {
	type plain CohortPatch
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	nulls, err := nullFields(data)
	if err != nil {
		return err
	}
	p.ClearStartDate = nulls["startDate"]
	p.ClearEndDate = nulls["endDate"]
	return nil
}
