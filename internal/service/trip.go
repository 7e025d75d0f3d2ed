// Package service contains the business logic for the Wanderlust API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls; list operations run the catalog filter over the fetched snapshot.
// No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// TripQuery is the criteria of the Trips screen.
type TripQuery struct {
	Text   string
	Status *string // nil means all statuses
}

// Create validates and persists a new trip. A missing status defaults to
// planning and a missing traveller count to 1.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	applyTripDefaults(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns one of the user's trips.
func (s *TripService) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the user's trips matching q, in storage order.
// Always returns a non-nil slice.
func (s *TripService) List(ctx context.Context, userID uuid.UUID, q TripQuery) ([]domain.Trip, error) {
	if q.Status != nil && !slices.Contains(domain.TripStatuses, *q.Status) {
		return nil, fmt.Errorf("service.TripService.List: %w", invalid("status must be one of %s", strings.Join(domain.TripStatuses, ", ")))
	}
	trips, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fetchFailed("service.TripService.List", err)
	}
	return catalog.Filter(trips, catalog.Criteria[domain.Trip]{
		Fields: catalog.TripFields(),
		Text:   q.Text,
		Facet:  q.Status,
	}), nil
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	applyTripDefaults(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes one of the user's trips.
func (s *TripService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func applyTripDefaults(t *domain.Trip) {
	t.Title = strings.TrimSpace(t.Title)
	t.DestinationName = strings.TrimSpace(t.DestinationName)
	if t.Status == nil {
		planning := domain.TripPlanning
		t.Status = &planning
	}
	if t.TravelerCount == nil {
		one := 1
		t.TravelerCount = &one
	}
}

// validateTrip enforces the trip form rules:
//   - title, destination, start and end dates are required
//   - end date must not be before start date (same-day trips are fine)
//   - traveller count is at least 1
//   - status is one of domain.TripStatuses
func validateTrip(t domain.Trip) error {
	switch {
	case t.Title == "":
		return invalid("title is required")
	case t.DestinationName == "":
		return invalid("destination is required")
	case t.StartDate.IsZero():
		return invalid("start_date is required")
	case t.EndDate.IsZero():
		return invalid("end_date is required")
	case t.EndDate.Before(t.StartDate):
		return invalid("end_date must not be before start_date")
	case *t.TravelerCount < 1:
		return invalid("traveler_count must be at least 1")
	case !slices.Contains(domain.TripStatuses, *t.Status):
		return invalid("status must be one of %s", strings.Join(domain.TripStatuses, ", "))
	}
	return nil
}
