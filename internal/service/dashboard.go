package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

const (
	dashboardUpcoming = 3
	dashboardRecent   = 3
)

// Dashboard is the home screen summary.
type Dashboard struct {
	Stats         domain.Stats
	UpcomingTrips []domain.Trip
	RecentEntries []domain.DiaryEntry
}

// DashboardService builds the home screen from the user's stored data.
type DashboardService struct {
	trips repo.TripRepo
	diary repo.DiaryRepo
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(trips repo.TripRepo, diary repo.DiaryRepo) *DashboardService {
	return &DashboardService{trips: trips, diary: diary}
}

// Get returns stats, the next trips still being planned or under way
// (earliest start first), and the most recent diary entries.
func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	trips, entries, err := loadTripsAndEntries(ctx, s.trips, s.diary, userID)
	if err != nil {
		return Dashboard{}, fetchFailed("service.DashboardService.Get", err)
	}

	upcoming := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if t.Status != nil && (*t.Status == domain.TripPlanning || *t.Status == domain.TripActive) {
			upcoming = append(upcoming, t)
		}
	}
	slices.SortStableFunc(upcoming, func(a, b domain.Trip) int {
		return cmp.Compare(a.StartDate.Unix(), b.StartDate.Unix())
	})

	// entries arrive newest first
	recent := entries[:min(len(entries), dashboardRecent)]

	return Dashboard{
		Stats:         statsOf(trips, entries),
		UpcomingTrips: upcoming[:min(len(upcoming), dashboardUpcoming)],
		RecentEntries: append([]domain.DiaryEntry{}, recent...),
	}, nil
}
