// Package catalog filters and aggregates in-memory record snapshots.
//
// Every screen of the app renders the same shape of view: a snapshot fetched
// from storage, narrowed by a free-text query and at most one categorical
// facet, plus a few derived counters. This package holds that logic once,
// parameterised by field accessors, so each record type only contributes a
// Fields value. All functions are pure: they never mutate their input, never
// fail, and preserve input order.
package catalog

import "strings"

// Fields configures which attributes of T take part in filtering.
// Accessors return nil for an absent (nullable) attribute.
type Fields[T any] struct {
	// Text lists the attributes searched by the free-text query.
	Text []func(T) *string
	// Facet returns the categorical attribute compared against Criteria.Facet.
	// A nil Facet accessor makes every non-nil facet match nothing.
	Facet func(T) *string
}

// Criteria is the set of active filters for one screen at one moment.
type Criteria[T any] struct {
	Fields Fields[T]
	// Text is matched case-insensitively as a substring of any Fields.Text
	// attribute. Empty or whitespace-only matches everything.
	Text string
	// Facet is compared for equality with Fields.Facet. nil means no constraint.
	Facet *string
}

// Filter returns the records matching c, in input order.
// A record is kept iff it matches the text query AND the facet.
// The result is always a new, non-nil slice.
func Filter[T any](records []T, c Criteria[T]) []T {
	q := strings.ToLower(strings.TrimSpace(c.Text))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchesText(r, c.Fields.Text, q) && matchesFacet(r, c.Fields.Facet, c.Facet) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record satisfies c.
func Matches[T any](r T, c Criteria[T]) bool {
	q := strings.ToLower(strings.TrimSpace(c.Text))
	return matchesText(r, c.Fields.Text, q) && matchesFacet(r, c.Fields.Facet, c.Facet)
}

// matchesText expects q already trimmed and lower-cased.
func matchesText[T any](r T, fields []func(T) *string, q string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(deref(f(r))), q) {
			return true
		}
	}
	return false
}

func matchesFacet[T any](r T, field func(T) *string, want *string) bool {
	if want == nil {
		return true
	}
	if field == nil {
		return false
	}
	got := field(r)
	return got != nil && *got == *want
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
