package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlust/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the Postgres implementation.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves one of the user's trips.
	// Returns domain.ErrNotFound if no such trip exists for that user.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error)

	// List returns all of the user's trips, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if the user has no such trip.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip. Returns domain.ErrNotFound if the user has no such trip.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, title, destination_id, destination_name, start_date, end_date,
	traveler_count, status, budget_range, trip_style, notes, created_at, updated_at`

func tripArgs(t domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":               t.ID,
		"user_id":          t.UserID,
		"title":            t.Title,
		"destination_id":   t.DestinationID, // nil becomes NULL
		"destination_name": t.DestinationName,
		"start_date":       t.StartDate,
		"end_date":         t.EndDate,
		"traveler_count":   t.TravelerCount,
		"status":           t.Status,
		"budget_range":     t.BudgetRange,
		"trip_style":       t.Style,
		"notes":            t.Notes,
	}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		INSERT INTO trips (user_id, title, destination_id, destination_name, start_date, end_date,
		                   traveler_count, status, budget_range, trip_style, notes)
		VALUES (@user_id, @title, @destination_id, @destination_name, @start_date, @end_date,
		        @traveler_count, @status, @budget_range, @trip_style, @notes)
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, tripArgs(trip)))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

// GetByID retrieves a trip by primary key, scoped to its owner.
func (r *pgTripRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE id = @id AND user_id = @user_id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

// List returns the user's trips ordered by created_at descending.
func (r *pgTripRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	q := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = @user_id ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	trips, err := collect(rows, scanTrip)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		UPDATE trips
		SET title            = @title,
		    destination_id   = @destination_id,
		    destination_name = @destination_name,
		    start_date       = @start_date,
		    end_date         = @end_date,
		    traveler_count   = @traveler_count,
		    status           = @status,
		    budget_range     = @budget_range,
		    trip_style       = @trip_style,
		    notes            = @notes,
		    updated_at       = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripColumns

	result, err := scanTrip(r.db.QueryRow(ctx, q, tripArgs(trip)))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

// Delete removes a trip by primary key, scoped to its owner.
func (r *pgTripRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single row into a domain.Trip, handling the UUID, date,
// and nullable destination_id conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t             domain.Trip
		id, userID    pgtype.UUID
		destinationID pgtype.UUID
		start, end    pgtype.Date
	)

	err := s.Scan(&id, &userID, &t.Title, &destinationID, &t.DestinationName, &start, &end,
		&t.TravelerCount, &t.Status, &t.BudgetRange, &t.Style, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	t.DestinationID = nullableUUID(destinationID)
	t.StartDate = start.Time
	t.EndDate = end.Time
	return t, nil
}
