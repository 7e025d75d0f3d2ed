package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlust/internal/domain"
)

// PackingRepo defines the persistence operations for packing items.
type PackingRepo interface {
	Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// List returns the user's items ordered by category, then name.
	List(ctx context.Context, userID uuid.UUID) ([]domain.PackingItem, error)

	// SetChecked sets is_checked on one item and returns the updated record.
	// Returns domain.ErrNotFound if the user has no such item.
	SetChecked(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error)

	// ResetChecked unchecks every item of the user and returns how many changed.
	ResetChecked(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete returns domain.ErrNotFound if the user has no such item.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgPackingRepo struct {
	db db
}

// NewPackingRepo constructs a PackingRepo backed by db.
func NewPackingRepo(db db) PackingRepo {
	return &pgPackingRepo{db: db}
}

const packingColumns = `id, user_id, name, category, is_essential, is_checked, custom_added, created_at`

func (r *pgPackingRepo) Create(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	q := `
		INSERT INTO packing_items (user_id, name, category, is_essential, is_checked, custom_added)
		VALUES (@user_id, @name, @category, @is_essential, @is_checked, @custom_added)
		RETURNING ` + packingColumns

	args := pgx.NamedArgs{
		"user_id":      item.UserID,
		"name":         item.Name,
		"category":     item.Category,
		"is_essential": item.IsEssential,
		"is_checked":   item.IsChecked,
		"custom_added": item.CustomAdded,
	}
	out, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.Create: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgPackingRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.PackingItem, error) {
	q := `SELECT ` + packingColumns + `
		FROM packing_items
		WHERE user_id = @user_id
		ORDER BY category, name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.List: %w", err)
	}
	out, err := collect(rows, scanPackingItem)
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.List: scan: %w", err)
	}
	return out, nil
}

func (r *pgPackingRepo) SetChecked(ctx context.Context, userID, id uuid.UUID, checked bool) (domain.PackingItem, error) {
	q := `
		UPDATE packing_items
		SET is_checked = @is_checked
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + packingColumns

	args := pgx.NamedArgs{"id": id, "user_id": userID, "is_checked": checked}
	out, err := scanPackingItem(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.SetChecked: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgPackingRepo) ResetChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	const q = `UPDATE packing_items SET is_checked = false WHERE user_id = @user_id AND is_checked`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("repo.PackingRepo.ResetChecked: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgPackingRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanPackingItem(s scanner) (domain.PackingItem, error) {
	var (
		it         domain.PackingItem
		id, userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &it.Name, &it.Category, &it.IsEssential, &it.IsChecked, &it.CustomAdded, &it.CreatedAt)
	if err != nil {
		return domain.PackingItem{}, err
	}
	it.ID = uuid.UUID(id.Bytes)
	it.UserID = uuid.UUID(userID.Bytes)
	return it, nil
}
