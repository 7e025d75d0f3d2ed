package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlust/internal/domain"
)

// DestinationRepo reads the destination reference data. Upsert exists for the
// seeding CLI only; the API never writes destinations.
type DestinationRepo interface {
	// List returns every destination ordered by name.
	List(ctx context.Context) ([]domain.Destination, error)

	// GetByID returns domain.ErrNotFound if the destination does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// Upsert inserts a destination or overwrites the one with the same
	// (name, country) pair.
	Upsert(ctx context.Context, d domain.Destination) (domain.Destination, error)
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by db.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, country, city, climate, average_budget, best_time_to_visit,
	description, image_url, latitude, longitude, popular_activities, created_at`

func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	q := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY name, country`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	out, err := collect(rows, scanDestination)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
	}
	return out, nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	q := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = @id`

	d, err := scanDestination(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", mapErr(err))
	}
	return d, nil
}

func (r *pgDestinationRepo) Upsert(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	q := `
		INSERT INTO destinations (name, country, city, climate, average_budget, best_time_to_visit,
		                          description, image_url, latitude, longitude, popular_activities)
		VALUES (@name, @country, @city, @climate, @average_budget, @best_time_to_visit,
		        @description, @image_url, @latitude, @longitude, @popular_activities)
		ON CONFLICT (name, country) DO UPDATE
		SET city               = EXCLUDED.city,
		    climate            = EXCLUDED.climate,
		    average_budget     = EXCLUDED.average_budget,
		    best_time_to_visit = EXCLUDED.best_time_to_visit,
		    description        = EXCLUDED.description,
		    image_url          = EXCLUDED.image_url,
		    latitude           = EXCLUDED.latitude,
		    longitude          = EXCLUDED.longitude,
		    popular_activities = EXCLUDED.popular_activities
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":               d.Name,
		"country":            d.Country,
		"city":               d.City,
		"climate":            d.Climate,
		"average_budget":     d.AverageBudget,
		"best_time_to_visit": d.BestTimeToVisit,
		"description":        d.Description,
		"image_url":          d.ImageURL,
		"latitude":           d.Latitude,
		"longitude":          d.Longitude,
		"popular_activities": nonNil(d.Activities),
	}

	out, err := scanDestination(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Upsert: %w", mapErr(err))
	}
	return out, nil
}

func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d  domain.Destination
		id pgtype.UUID
	)
	err := s.Scan(&id, &d.Name, &d.Country, &d.City, &d.Climate, &d.AverageBudget, &d.BestTimeToVisit,
		&d.Description, &d.ImageURL, &d.Latitude, &d.Longitude, &d.Activities, &d.CreatedAt)
	if err != nil {
		return domain.Destination{}, err
	}
	d.ID = uuid.UUID(id.Bytes)
	d.Activities = nonNil(d.Activities)
	return d, nil
}
