package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

// ProfileService implements the Profile screen.
type ProfileService struct {
	profiles repo.ProfileRepo
	trips    repo.TripRepo
	diary    repo.DiaryRepo
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profiles repo.ProfileRepo, trips repo.TripRepo, diary repo.DiaryRepo) *ProfileService {
	return &ProfileService{profiles: profiles, trips: trips, diary: diary}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return p, nil
}

// Update replaces the editable profile fields. Email is owned by the account
// and is not changed here.
func (s *ProfileService) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	out, err := s.profiles.Update(ctx, p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return out, nil
}

// Stats counts the user's trips, distinct destinations and diary entries.
func (s *ProfileService) Stats(ctx context.Context, userID uuid.UUID) (domain.Stats, error) {
	trips, entries, err := loadTripsAndEntries(ctx, s.trips, s.diary, userID)
	if err != nil {
		return domain.Stats{}, fetchFailed("service.ProfileService.Stats", err)
	}
	return statsOf(trips, entries), nil
}

// loadTripsAndEntries fetches both lists concurrently.
func loadTripsAndEntries(ctx context.Context, trips repo.TripRepo, diary repo.DiaryRepo, userID uuid.UUID) ([]domain.Trip, []domain.DiaryEntry, error) {
	var (
		ts []domain.Trip
		es []domain.DiaryEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ts, err = trips.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		es, err = diary.List(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ts, es, nil
}

func statsOf(trips []domain.Trip, entries []domain.DiaryEntry) domain.Stats {
	return domain.Stats{
		Trips:        len(trips),
		Destinations: catalog.UniqueCount(trips, tripDestination),
		Memories:     len(entries),
	}
}

func tripDestination(t domain.Trip) *string {
	if t.DestinationName == "" {
		return nil
	}
	return &t.DestinationName
}
