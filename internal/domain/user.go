package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in. PasswordHash is a bcrypt hash and is
// never serialised.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the user-editable presentation fields shown on the Profile screen.
type Profile struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	DisplayName          *string   `json:"display_name,omitempty"`
	Email                *string   `json:"email,omitempty"`
	AvatarURL            *string   `json:"avatar_url,omitempty"`
	TravelStyle          *string   `json:"travel_style,omitempty"`
	PreferredBudgetRange *string   `json:"preferred_budget_range,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Stats are the counters shown on the Profile and Dashboard screens.
type Stats struct {
	Trips        int `json:"trips"`
	Destinations int `json:"destinations"` // distinct destination names across trips
	Memories     int `json:"memories"`
}
