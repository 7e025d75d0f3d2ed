package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/wanderlust/internal/domain"
)

// UserRepo stores sign-in accounts.
type UserRepo interface {
	// Create returns domain.ErrConflict if the email is already registered.
	Create(ctx context.Context, email, passwordHash string) (domain.User, error)

	// GetByEmail returns domain.ErrNotFound if no account uses email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by db.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) Create(ctx context.Context, email, passwordHash string) (domain.User, error) {
	const q = `
		INSERT INTO users (email, password_hash)
		VALUES (lower(@email), @password_hash)
		RETURNING id, email, password_hash, created_at`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email, "password_hash": passwordHash}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", mapErr(err))
	}
	return u, nil
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT id, email, password_hash, created_at FROM users WHERE email = lower(@email)`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", mapErr(err))
	}
	return u, nil
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	if err := s.Scan(&id, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}

// ProfileRepo stores the per-user profile row created at sign-up.
type ProfileRepo interface {
	Create(ctx context.Context, userID uuid.UUID, email string) (domain.Profile, error)

	// GetByUserID returns domain.ErrNotFound if the user has no profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Profile, error)

	// Update overwrites the editable fields of the user's profile.
	Update(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by db.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

const profileColumns = `id, user_id, display_name, email, avatar_url, travel_style,
	preferred_budget_range, created_at, updated_at`

func (r *pgProfileRepo) Create(ctx context.Context, userID uuid.UUID, email string) (domain.Profile, error) {
	q := `
		INSERT INTO profiles (user_id, email)
		VALUES (@user_id, @email)
		RETURNING ` + profileColumns

	p, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "email": email}))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Create: %w", mapErr(err))
	}
	return p, nil
}

func (r *pgProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = @user_id`

	p, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetByUserID: %w", mapErr(err))
	}
	return p, nil
}

func (r *pgProfileRepo) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	q := `
		UPDATE profiles
		SET display_name           = @display_name,
		    avatar_url             = @avatar_url,
		    travel_style           = @travel_style,
		    preferred_budget_range = @preferred_budget_range,
		    updated_at             = now()
		WHERE user_id = @user_id
		RETURNING ` + profileColumns

	args := pgx.NamedArgs{
		"user_id":                p.UserID,
		"display_name":           p.DisplayName,
		"avatar_url":             p.AvatarURL,
		"travel_style":           p.TravelStyle,
		"preferred_budget_range": p.PreferredBudgetRange,
	}
	out, err := scanProfile(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: %w", mapErr(err))
	}
	return out, nil
}

func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p          domain.Profile
		id, userID pgtype.UUID
	)
	err := s.Scan(&id, &userID, &p.DisplayName, &p.Email, &p.AvatarURL, &p.TravelStyle,
		&p.PreferredBudgetRange, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.UserID = uuid.UUID(userID.Bytes)
	return p, nil
}
