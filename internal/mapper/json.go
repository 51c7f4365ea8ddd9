package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Helpers for jsonb columns. Marshal failures degrade to NULL rather than
// blocking the write; these values are display data, not invariants.

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func stringSlicesFromJSON(raw datatypes.JSON) map[string][]string {
	if len(raw) == 0 {
		return nil
	}
	var out map[string][]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func mapFromJSON(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
