// Package search provides a simple, deterministic, concurrency-safe in-memory
// autocomplete index over catalog records. It is intentionally small and
// dependency-free:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Unicode-aware tokenization over the records' string fields
//   - Immutable, read-only index after construction (safe for concurrent use)
//   - Deterministic scoring and sorting (stable order for ties)
//
// Scoring uses Jaccard similarity between the query token set and each
// record's token set: score = |Q ∩ R| / |Q ∪ R|, with a prefix bonus so
// that partial words typed into an autocomplete box still rank their
// completions first.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dropforge/catalog-bot/internal/schema"
)

// Result is one ranked record with its similarity score.
type Result struct {
	Record schema.Record
	Score  float64
}

// Index is the minimal interface implemented by record indices.
type Index interface {
	TopK(query string, k int) []Result
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	fields    []string
	stopwords map[string]struct{}
}

func defaultConfig() config {
	return config{
		// Fields indexed by default. Everything else in a record is
		// ignored so that URLs and IDs do not pollute the token sets.
		fields: []string{"name", "title", "brand", "category", "description"},
	}
}

// WithFields replaces the set of record fields that get indexed.
func WithFields(fields []string) Option {
	return func(c *config) {
		if len(fields) > 0 {
			c.fields = fields
		}
	}
}

// WithStopwords drops the given words from both records and queries.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type entry struct {
	record schema.Record
	id     string
	tokens map[string]struct{}
	tLen   int
}

type index struct {
	cfg     config
	entries []entry
}

// NewIndex builds an Index over the given records. Records without any
// indexable text are skipped.
func NewIndex(records []schema.Record, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		var parts []string
		for _, f := range cfg.fields {
			if s, ok := rec[f].(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		toks := tokenize(strings.Join(parts, " "), cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		id, _ := rec["id"].(string)
		entries = append(entries, entry{record: rec, id: id, tokens: toks, tLen: len(toks)})
	}
	return &index{cfg: cfg, entries: entries}
}

// TopK returns up to k best-matching records by Jaccard similarity with a
// prefix bonus. Ties break toward the smaller token set, then the lower id.
func (i *index) TopK(q string, k int) []Result {
	if len(i.entries) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 10
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}
	qLen := len(qTokens)

	type scored struct {
		rec   schema.Record
		id    string
		score float64
		tLen  int
	}

	buf := make([]scored, 0, len(i.entries))
	for _, e := range i.entries {
		exact, prefix := overlap(qTokens, e.tokens)
		if exact == 0 && prefix == 0 {
			continue
		}
		union := float64(qLen + e.tLen - exact)
		if union <= 0 {
			continue
		}
		// Prefix matches count half an exact match so that "nik"
		// still finds "nike" without beating a full-word hit.
		score := (float64(exact) + 0.5*float64(prefix)) / union
		buf = append(buf, scored{rec: e.record, id: e.id, score: score, tLen: e.tLen})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].score != buf[b].score {
			return buf[a].score > buf[b].score
		}
		if buf[a].tLen != buf[b].tLen {
			return buf[a].tLen < buf[b].tLen
		}
		return buf[a].id < buf[b].id
	})

	if k > len(buf) {
		k = len(buf)
	}
	out := make([]Result, k)
	for n := 0; n < k; n++ {
		out[n] = Result{Record: buf[n].rec, Score: buf[n].score}
	}
	return out
}

// ----------------------------------------------------------------------------
// Helpers

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if stop != nil {
			if _, skip := stop[w]; skip {
				continue
			}
		}
		out[w] = struct{}{}
	}
	return out
}

// overlap counts exact token matches and, separately, query tokens that are
// a strict prefix of some record token (and not an exact match anywhere).
func overlap(query, record map[string]struct{}) (exact, prefix int) {
	for q := range query {
		if _, ok := record[q]; ok {
			exact++
			continue
		}
		for r := range record {
			if len(q) < len(r) && strings.HasPrefix(r, q) {
				prefix++
				break
			}
		}
	}
	return exact, prefix
}
