// Package schema keeps the records inside a remote catalog document
// structurally consistent even though no schema is declared anywhere.
//
// The document is schemaless JSON authored by hand or by older bot versions,
// so everything here is inference over observed data: the drops collection
// may live under any of several conventional key names, and record shapes
// drift as fields are added over time. The normalizer is advisory, not a
// validated contract; malformed existing data propagates its guessed types
// forward.
package schema

import (
	"encoding/json"
	"sort"
)

// Document is the decoded remote JSON blob: an unordered mapping from
// collection name to a sequence of records. Values outside the known
// collections pass through untouched on write.
type Document map[string]any

// Record is one catalog entry: field name → scalar or null. Nested arrays
// and objects survive round trips but are not first-class for the
// normalizer.
type Record = map[string]any

// dropsKeyCandidates is checked in order before falling back to shape-based
// detection. These are the key names observed in the wild.
var dropsKeyCandidates = []string{"drops", "upcomingItems", "upcoming", "releases"}

// ProductsKey is the fixed name of the products collection.
const ProductsKey = "products"

// DetectDropsKey returns the name of the "upcoming/drops" collection inside
// doc. Candidate names win first; otherwise the first non-products top-level
// key holding an array is used (alphabetical, for determinism); if nothing
// qualifies the literal "drops" is returned so callers can create the
// collection.
func DetectDropsKey(doc Document) string {
	for _, key := range dropsKeyCandidates {
		if _, ok := doc[key].([]any); ok {
			return key
		}
	}

	var arrayKeys []string
	for k, v := range doc {
		if k == ProductsKey {
			continue
		}
		if _, ok := v.([]any); ok {
			arrayKeys = append(arrayKeys, k)
		}
	}
	if len(arrayKeys) > 0 {
		sort.Strings(arrayKeys)
		return arrayKeys[0]
	}
	return "drops"
}

// Records extracts the named collection from doc as a slice of records.
// Array elements that are not objects are skipped.
func Records(doc Document, key string) []Record {
	arr, ok := doc[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(arr))
	for _, el := range arr {
		if rec, ok := el.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}

// SetRecords stores records back into doc under key, re-boxed as []any so
// the document serializes the way it was read.
func SetRecords(doc Document, key string, records []Record) {
	arr := make([]any, len(records))
	for i, rec := range records {
		arr[i] = rec
	}
	doc[key] = arr
}

// fieldKind is the guessed type of a field, derived from the first
// non-null value observed for it.
type fieldKind int

const (
	kindUnknown fieldKind = iota // never seen non-null; defaults to ""
	kindNumber
	kindBool
	kindObject
	kindString
)

func kindOf(v any) fieldKind {
	switch v.(type) {
	case float64, json.Number, int, int64:
		return kindNumber
	case bool:
		return kindBool
	case map[string]any, []any:
		return kindObject
	case string:
		return kindString
	default:
		return kindString
	}
}

// defaultFor returns the back-fill value for a field of the given kind:
// 0 for numbers, false for booleans, null for objects, "" otherwise.
// Absence and the default value are deliberately indistinguishable; the
// presentation layer treats them identically.
func defaultFor(k fieldKind) any {
	switch k {
	case kindNumber:
		return float64(0)
	case kindBool:
		return false
	case kindObject:
		return nil
	default:
		return ""
	}
}

// MergeWithSchema conforms newRecord to the union schema of existing.
//
// With no existing records there is nothing to conform to and newRecord is
// returned unchanged. Otherwise the union of field names across every
// existing record is computed; per field, the type of the first non-null
// value (scanning records in collection order) decides the default. The
// result is that default skeleton with every field of newRecord overlaid on
// top, so every record in a collection carries at least every field seen so
// far; gaps introduced by records created under an older, narrower shape
// are silently back-filled without a migration step.
func MergeWithSchema(newRecord Record, existing []Record) Record {
	if len(existing) == 0 {
		return newRecord
	}

	kinds := make(map[string]fieldKind)
	for _, rec := range existing {
		for field, v := range rec {
			if _, seen := kinds[field]; seen && kinds[field] != kindUnknown {
				continue
			}
			if v == nil {
				if _, seen := kinds[field]; !seen {
					kinds[field] = kindUnknown
				}
				continue
			}
			kinds[field] = kindOf(v)
		}
	}

	merged := make(Record, len(kinds)+len(newRecord))
	for field, k := range kinds {
		merged[field] = defaultFor(k)
	}
	for field, v := range newRecord {
		merged[field] = v
	}
	return merged
}

// NormalizeCollection runs every record through MergeWithSchema against the
// full collection, so that all records end up with the union shape. Used by
// the explicit repair path; ordinary writes only normalize the record being
// written.
func NormalizeCollection(records []Record) []Record {
	if len(records) < 2 {
		return records
	}
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = MergeWithSchema(rec, records)
	}
	return out
}
