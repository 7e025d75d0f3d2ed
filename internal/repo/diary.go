package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlust/internal/domain"
)

// DiaryRepo defines the persistence operations for diary entries.
type DiaryRepo interface {
	Create(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)

	// GetByID returns domain.ErrNotFound if the user has no such entry.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error)

	// List returns the user's entries, newest entry_date first.
	List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)

	Update(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error)

	// Delete returns domain.ErrNotFound if the user has no such entry.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgDiaryRepo struct {
	db db
}

// NewDiaryRepo constructs a DiaryRepo backed by db.
func NewDiaryRepo(db db) DiaryRepo {
	return &pgDiaryRepo{db: db}
}

const diaryColumns = `id, user_id, trip_id, title, content, entry_date, location, mood,
	tags, image_urls, is_public, created_at, updated_at`

func diaryArgs(e domain.DiaryEntry) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":         e.ID,
		"user_id":    e.UserID,
		"trip_id":    e.TripID,
		"title":      e.Title,
		"content":    e.Content,
		"entry_date": e.EntryDate,
		"location":   e.Location,
		"mood":       e.Mood,
		"tags":       nonNil(e.Tags),
		"image_urls": nonNil(e.ImageURLs),
		"is_public":  e.IsPublic,
	}
}

func (r *pgDiaryRepo) Create(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	q := `
		INSERT INTO diary_entries (user_id, trip_id, title, content, entry_date, location, mood,
		                           tags, image_urls, is_public)
		VALUES (@user_id, @trip_id, @title, @content, @entry_date, @location, @mood,
		        @tags, @image_urls, @is_public)
		RETURNING ` + diaryColumns

	out, err := scanDiaryEntry(r.db.QueryRow(ctx, q, diaryArgs(e)))
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("repo.DiaryRepo.Create: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgDiaryRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.DiaryEntry, error) {
	q := `SELECT ` + diaryColumns + ` FROM diary_entries WHERE id = @id AND user_id = @user_id`

	out, err := scanDiaryEntry(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("repo.DiaryRepo.GetByID: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgDiaryRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	q := `SELECT ` + diaryColumns + `
		FROM diary_entries
		WHERE user_id = @user_id
		ORDER BY entry_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.DiaryRepo.List: %w", err)
	}
	out, err := collect(rows, scanDiaryEntry)
	if err != nil {
		return nil, fmt.Errorf("repo.DiaryRepo.List: scan: %w", err)
	}
	return out, nil
}

func (r *pgDiaryRepo) Update(ctx context.Context, e domain.DiaryEntry) (domain.DiaryEntry, error) {
	q := `
		UPDATE diary_entries
		SET trip_id    = @trip_id,
		    title      = @title,
		    content    = @content,
		    entry_date = @entry_date,
		    location   = @location,
		    mood       = @mood,
		    tags       = @tags,
		    image_urls = @image_urls,
		    is_public  = @is_public,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + diaryColumns

	out, err := scanDiaryEntry(r.db.QueryRow(ctx, q, diaryArgs(e)))
	if err != nil {
		return domain.DiaryEntry{}, fmt.Errorf("repo.DiaryRepo.Update: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgDiaryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM diary_entries WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.DiaryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DiaryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanDiaryEntry(s scanner) (domain.DiaryEntry, error) {
	var (
		e          domain.DiaryEntry
		id, userID pgtype.UUID
		tripID     pgtype.UUID
		entryDate  pgtype.Date
	)
	err := s.Scan(&id, &userID, &tripID, &e.Title, &e.Content, &entryDate, &e.Location, &e.Mood,
		&e.Tags, &e.ImageURLs, &e.IsPublic, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.DiaryEntry{}, err
	}
	e.ID = uuid.UUID(id.Bytes)
	e.UserID = uuid.UUID(userID.Bytes)
	e.TripID = nullableUUID(tripID)
	e.EntryDate = entryDate.Time
	e.Tags = nonNil(e.Tags)
	e.ImageURLs = nonNil(e.ImageURLs)
	return e, nil
}
