package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustDoc(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return doc
}

func TestDetectDropsKey_CandidateWinsOverFallback(t *testing.T) {
	doc := mustDoc(t, `{"drops":[{"id":"d1"}],"other":[{"id":"x"}]}`)
	if got := DetectDropsKey(doc); got != "drops" {
		t.Fatalf("DetectDropsKey = %q; want drops", got)
	}
}

func TestDetectDropsKey_CandidateOrder(t *testing.T) {
	// "upcoming" and "releases" both present: earlier candidate wins.
	doc := mustDoc(t, `{"releases":[],"upcoming":[]}`)
	if got := DetectDropsKey(doc); got != "upcoming" {
		t.Fatalf("DetectDropsKey = %q; want upcoming", got)
	}
}

func TestDetectDropsKey_SingleCandidate(t *testing.T) {
	doc := mustDoc(t, `{"upcomingItems":[{"id":"d1"}]}`)
	if got := DetectDropsKey(doc); got != "upcomingItems" {
		t.Fatalf("DetectDropsKey = %q; want upcomingItems", got)
	}
}

func TestDetectDropsKey_FallbackToFirstArrayKey(t *testing.T) {
	doc := mustDoc(t, `{"onlyX":[{"id":"d1"}],"products":[]}`)
	if got := DetectDropsKey(doc); got != "onlyX" {
		t.Fatalf("DetectDropsKey = %q; want onlyX", got)
	}
}

func TestDetectDropsKey_NonArrayCandidateSkipped(t *testing.T) {
	// "drops" holds a string, not an array; fallback applies.
	doc := mustDoc(t, `{"drops":"nope","zeta":[{"id":"d1"}]}`)
	if got := DetectDropsKey(doc); got != "zeta" {
		t.Fatalf("DetectDropsKey = %q; want zeta", got)
	}
}

func TestDetectDropsKey_DefaultsToDrops(t *testing.T) {
	doc := mustDoc(t, `{"products":[{"id":"p1"}],"note":"hello"}`)
	if got := DetectDropsKey(doc); got != "drops" {
		t.Fatalf("DetectDropsKey = %q; want drops", got)
	}
}

func TestMergeWithSchema_EmptyExistingReturnsUnchanged(t *testing.T) {
	rec := Record{"id": "p1", "name": "Widget"}
	got := MergeWithSchema(rec, nil)
	if !reflect.DeepEqual(got, rec) {
		t.Fatalf("merge against empty = %#v; want %#v", got, rec)
	}
}

func TestMergeWithSchema_BackfillsDefaultsByGuessedType(t *testing.T) {
	existing := []Record{
		{"id": "p1", "name": "Widget", "price": float64(12.5), "active": true, "tags": []any{"a"}},
		{"id": "p2", "name": "Gadget", "hint": "soon"},
	}
	got := MergeWithSchema(Record{}, existing)

	if v, ok := got["price"]; !ok || v != float64(0) {
		t.Errorf("price = %#v; want 0 (numeric default, field absent from new record)", v)
	}
	if v, ok := got["active"]; !ok || v != false {
		t.Errorf("active = %#v; want false", v)
	}
	if v, ok := got["tags"]; !ok || v != nil {
		t.Errorf("tags = %#v; want nil (object default)", v)
	}
	for _, f := range []string{"id", "name", "hint"} {
		if v, ok := got[f]; !ok || v != "" {
			t.Errorf("%s = %#v; want empty string", f, v)
		}
	}
}

func TestMergeWithSchema_NewRecordOverridesDefaults(t *testing.T) {
	existing := []Record{{"id": "p1", "price": float64(10)}}
	got := MergeWithSchema(Record{"id": "p2", "price": float64(3.5)}, existing)
	if got["id"] != "p2" || got["price"] != float64(3.5) {
		t.Fatalf("overlay lost: %#v", got)
	}
}

func TestMergeWithSchema_FirstNonNullValueDecidesType(t *testing.T) {
	existing := []Record{
		{"score": nil},
		{"score": float64(7)},
	}
	got := MergeWithSchema(Record{}, existing)
	if got["score"] != float64(0) {
		t.Fatalf("score = %#v; want 0 (first non-null was numeric)", got["score"])
	}
}

func TestMergeWithSchema_NeverObservedFieldDefaultsToString(t *testing.T) {
	existing := []Record{{"ghost": nil}, {"ghost": nil}}
	got := MergeWithSchema(Record{}, existing)
	if got["ghost"] != "" {
		t.Fatalf("ghost = %#v; want empty string", got["ghost"])
	}
}

func TestNormalizeCollection_AllRecordsGetUnionShape(t *testing.T) {
	records := []Record{
		{"id": "p1", "price": float64(5)},
		{"id": "p2", "name": "Late Widget"},
	}
	out := NormalizeCollection(records)
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0]["name"] != "" {
		t.Errorf("first record missing back-filled name: %#v", out[0])
	}
	if out[1]["price"] != float64(0) {
		t.Errorf("second record missing back-filled price: %#v", out[1])
	}
	// Values that were present survive.
	if out[0]["price"] != float64(5) || out[1]["name"] != "Late Widget" {
		t.Errorf("existing values clobbered: %#v", out)
	}
}

func TestRecordsAndSetRecords_RoundTrip(t *testing.T) {
	doc := mustDoc(t, `{"products":[{"id":"p1"},"junk",{"id":"p2"}]}`)
	recs := Records(doc, "products")
	if len(recs) != 2 {
		t.Fatalf("non-object elements should be skipped, got %d records", len(recs))
	}
	SetRecords(doc, "products", recs)
	if arr, ok := doc["products"].([]any); !ok || len(arr) != 2 {
		t.Fatalf("SetRecords produced %#v", doc["products"])
	}
}

func TestDetectFields_TypesAndCategories(t *testing.T) {
	sample := Record{
		"id":       "p1",
		"price":    float64(9.99),
		"brand":    "Acme",
		"stock":    "STABLE",
		"featured": true,
		"tags":     []any{"new"},
		"extra":    map[string]any{"k": "v"},
	}
	fields := DetectFields(sample)

	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	want := map[string][2]string{
		"id":       {"string", "identity"},
		"price":    {"number", "display"},
		"brand":    {"string", "display"},
		"stock":    {"string", "status"},
		"featured": {"boolean", "meta"},
		"tags":     {"array", "meta"},
		"extra":    {"object", "meta"},
	}
	for name, tc := range want {
		f, ok := byName[name]
		if !ok {
			t.Errorf("missing field %s", name)
			continue
		}
		if f.Type != tc[0] || f.Category != tc[1] {
			t.Errorf("%s = (%s,%s); want (%s,%s)", name, f.Type, f.Category, tc[0], tc[1])
		}
	}

	// Deterministic ordering by name.
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Name > fields[i].Name {
			t.Fatalf("fields not sorted: %v", fields)
		}
	}
}
