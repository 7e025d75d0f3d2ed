package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

// ExportService assembles a flat export of a user's trips and diary entries.
type ExportService struct {
	trips repo.TripRepo
	diary repo.DiaryRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, diary repo.DiaryRepo) *ExportService {
	return &ExportService{trips: trips, diary: diary}
}

// Export returns one ExportRow per diary entry per trip, trips in list order
// and entries oldest first. Trips with no entries contribute one row with
// empty entry fields. Entries not attached to any of the user's trips follow
// at the end with empty trip fields.
func (s *ExportService) Export(ctx context.Context, userID uuid.UUID) ([]domain.ExportRow, error) {
	trips, entries, err := loadTripsAndEntries(ctx, s.trips, s.diary, userID)
	if err != nil {
		return nil, fetchFailed("service.ExportService.Export", err)
	}

	slices.SortStableFunc(entries, func(a, b domain.DiaryEntry) int {
		return cmp.Compare(a.EntryDate.Unix(), b.EntryDate.Unix())
	})
	byTrip := make(map[uuid.UUID][]domain.DiaryEntry, len(trips))
	for _, e := range entries {
		if e.TripID != nil {
			byTrip[*e.TripID] = append(byTrip[*e.TripID], e)
		}
	}

	rows := make([]domain.ExportRow, 0, len(entries)+len(trips))
	known := make(map[uuid.UUID]bool, len(trips))
	for _, t := range trips {
		known[t.ID] = true
		base := tripRow(t)
		tripEntries := byTrip[t.ID]
		if len(tripEntries) == 0 {
			base.Tags = []string{}
			rows = append(rows, base)
			continue
		}
		for _, e := range tripEntries {
			rows = append(rows, withEntry(base, e))
		}
	}
	for _, e := range entries {
		if e.TripID == nil || !known[*e.TripID] {
			rows = append(rows, withEntry(domain.ExportRow{}, e))
		}
	}
	return rows, nil
}

func tripRow(t domain.Trip) domain.ExportRow {
	row := domain.ExportRow{
		TripID:          t.ID.String(),
		TripTitle:       t.Title,
		DestinationName: t.DestinationName,
		StartDate:       t.StartDate.Format(dateLayout),
		EndDate:         t.EndDate.Format(dateLayout),
		DurationDays:    catalog.DurationDays(t.StartDate, t.EndDate),
	}
	if t.Status != nil {
		row.Status = *t.Status
	}
	return row
}

func withEntry(row domain.ExportRow, e domain.DiaryEntry) domain.ExportRow {
	date := e.EntryDate
	row.EntryTitle = e.Title
	row.EntryDate = &date
	if e.Location != nil {
		row.EntryLocation = *e.Location
	}
	if e.Mood != nil {
		row.EntryMood = *e.Mood
	}
	row.Tags = append([]string{}, e.Tags...)
	return row
}

const dateLayout = "2006-01-02"
