package schema

import (
	"encoding/json"
	"sort"
)

// Field describes one inferred record field for the advisory schema profile
// stored on the guild row. Category buckets drive how the presentation
// layer groups fields; they carry no merge semantics.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`     // string|number|boolean|array|object
	Category string `json:"category"` // identity|display|status|meta
}

var (
	identityFields = map[string]struct{}{"id": {}, "name": {}, "code": {}, "title": {}}
	displayFields  = map[string]struct{}{"imageUrl": {}, "image": {}, "price": {}, "brand": {}, "category": {}}
	statusFields   = map[string]struct{}{"stock": {}, "status": {}, "available": {}}
)

// DetectFields infers a field profile from a sample record. Fields are
// returned in name order (maps are unordered; the profile must be stable
// across syncs to avoid noisy row updates).
func DetectFields(sample Record) []Field {
	names := make([]string, 0, len(sample))
	for name := range sample {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		category := "meta"
		if _, ok := identityFields[name]; ok {
			category = "identity"
		} else if _, ok := displayFields[name]; ok {
			category = "display"
		} else if _, ok := statusFields[name]; ok {
			category = "status"
		}

		typ := "string"
		switch sample[name].(type) {
		case float64, json.Number, int, int64:
			typ = "number"
		case bool:
			typ = "boolean"
		case []any:
			typ = "array"
		case map[string]any:
			typ = "object"
		}

		fields = append(fields, Field{Name: name, Type: typ, Category: category})
	}
	return fields
}

// ProfileJSON renders a field profile as the JSON stored in
// guild_configs.schema_profile.
func ProfileJSON(fields []Field) (string, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
