package catalog

import (
	"math"
	"time"
)

// Progress is the checked/total counter of a checklist.
type Progress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// ProgressOf counts the items for which checked returns true.
// Percent is 100*checked/total rounded to the nearest integer, halves up,
// and 0 for an empty list.
func ProgressOf[T any](items []T, checked func(T) bool) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if checked(it) {
			p.Checked++
		}
	}
	if p.Total > 0 {
		// floor(100*c/t + 0.5) in integer arithmetic.
		p.Percent = (200*p.Checked + p.Total) / (2 * p.Total)
	}
	return p
}

// Group is one non-empty category bucket.
type Group[T any] struct {
	Category string `json:"category"`
	Items    []T    `json:"items"`
}

// Groups is an ordered category -> items mapping.
type Groups[T any] []Group[T]

// Get returns the bucket for category, or nil when it has no items.
func (g Groups[T]) Get(category string) []T {
	for _, b := range g {
		if b.Category == category {
			return b.Items
		}
	}
	return nil
}

// Map returns the buckets keyed by category.
func (g Groups[T]) Map() map[string][]T {
	m := make(map[string][]T, len(g))
	for _, b := range g {
		m[b.Category] = b.Items
	}
	return m
}

// GroupByCategory buckets items by categoryOf in the order given by
// categories, preserving input order within each bucket. Categories with no
// items are omitted; items whose category is not listed are dropped.
func GroupByCategory[T any](items []T, categories []string, categoryOf func(T) string) Groups[T] {
	idx := make(map[string]int, len(categories))
	buckets := make([][]T, len(categories))
	for i, c := range categories {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	for _, it := range items {
		if i, ok := idx[categoryOf(it)]; ok {
			buckets[i] = append(buckets[i], it)
		}
	}
	out := make(Groups[T], 0, len(categories))
	for i, c := range categories {
		if len(buckets[i]) > 0 && idx[c] == i {
			out = append(out, Group[T]{Category: c, Items: buckets[i]})
		}
	}
	return out
}

// CountBy returns the number of items per listed category, zero counts included.
func CountBy[T any](items []T, categories []string, categoryOf func(T) string) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c] = 0
	}
	for _, it := range items {
		c := categoryOf(it)
		if _, ok := counts[c]; ok {
			counts[c]++
		}
	}
	return counts
}

// UniqueCount returns the number of distinct non-nil keys across records.
func UniqueCount[T any](records []T, key func(T) *string) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if k := key(r); k != nil {
			seen[*k] = struct{}{}
		}
	}
	return len(seen)
}

const day = 24 * time.Hour

// DurationDays returns the whole number of days between start and end,
// rounded up, never less than 1. Order of the arguments does not matter.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	n := int(math.Ceil(float64(d) / float64(day)))
	if n < 1 {
		return 1
	}
	return n
}
