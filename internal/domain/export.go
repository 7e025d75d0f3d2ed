package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per diary entry, with trip fields
// repeated for every entry written on that trip. Trips with no entries yield
// one row with zero values for all entry fields.
//
// Tags is the entry's tag list in stored order.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	// Trip fields, repeated for every entry on the trip.
	TripID          string
	TripTitle       string
	DestinationName string
	Status          string // empty when the trip has no stored status
	StartDate       string // "2006-01-02" formatted date
	EndDate         string // "2006-01-02" formatted date
	DurationDays    int

	// Entry fields, zero values when the trip has no entries.
	EntryTitle    string
	EntryDate     *time.Time
	EntryLocation string
	EntryMood     string

	Tags []string
}
