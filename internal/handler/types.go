package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/wanderlust/internal/catalog"
	"github.com/pkordes/wanderlust/internal/domain"
)

// Pagination describes one page of a paged list.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// ListResponse is the envelope of every list endpoint.
type ListResponse[T any] struct {
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ---- trips -----------------------------------------------------------------

// TripRequest is the body of POST /trips and PUT /trips/{id}.
type TripRequest struct {
	Title           string              `json:"title"`
	DestinationID   *uuid.UUID          `json:"destination_id,omitempty"`
	DestinationName string              `json:"destination_name"`
	StartDate       *openapi_types.Date `json:"start_date,omitempty"`
	EndDate         *openapi_types.Date `json:"end_date,omitempty"`
	TravelerCount   *int                `json:"traveler_count,omitempty"`
	Status          *string             `json:"status,omitempty"`
	BudgetRange     *string             `json:"budget_range,omitempty"`
	TripStyle       *string             `json:"trip_style,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
}

// Trip is the API view of a trip, including its derived duration.
type Trip struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	DestinationID   *uuid.UUID         `json:"destination_id,omitempty"`
	DestinationName string             `json:"destination_name"`
	StartDate       openapi_types.Date `json:"start_date"`
	EndDate         openapi_types.Date `json:"end_date"`
	DurationDays    int                `json:"duration_days"`
	TravelerCount   *int               `json:"traveler_count,omitempty"`
	Status          *string            `json:"status,omitempty"`
	BudgetRange     *string            `json:"budget_range,omitempty"`
	TripStyle       *string            `json:"trip_style,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (b TripRequest) toDomain(userID uuid.UUID) domain.Trip {
	t := domain.Trip{
		UserID:          userID,
		Title:           b.Title,
		DestinationID:   b.DestinationID,
		DestinationName: b.DestinationName,
		TravelerCount:   b.TravelerCount,
		Status:          b.Status,
		BudgetRange:     b.BudgetRange,
		Style:           b.TripStyle,
		Notes:           b.Notes,
	}
	if b.StartDate != nil {
		t.StartDate = b.StartDate.Time
	}
	if b.EndDate != nil {
		t.EndDate = b.EndDate.Time
	}
	return t
}

func tripToResponse(t domain.Trip) Trip {
	return Trip{
		ID:              t.ID,
		Title:           t.Title,
		DestinationID:   t.DestinationID,
		DestinationName: t.DestinationName,
		StartDate:       openapi_types.Date{Time: t.StartDate},
		EndDate:         openapi_types.Date{Time: t.EndDate},
		DurationDays:    catalog.DurationDays(t.StartDate, t.EndDate),
		TravelerCount:   t.TravelerCount,
		Status:          t.Status,
		BudgetRange:     t.BudgetRange,
		TripStyle:       t.Style,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func tripsToResponse(trips []domain.Trip) []Trip {
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

// ---- diary -----------------------------------------------------------------

// DiaryEntryRequest is the body of POST /diary and PUT /diary/{id}.
type DiaryEntryRequest struct {
	TripID    *uuid.UUID          `json:"trip_id,omitempty"`
	Title     string              `json:"title"`
	Content   *string             `json:"content,omitempty"`
	EntryDate *openapi_types.Date `json:"entry_date,omitempty"`
	Location  *string             `json:"location,omitempty"`
	Mood      *string             `json:"mood,omitempty"`
	Tags      []string            `json:"tags,omitempty"`
	ImageURLs []string            `json:"image_urls,omitempty"`
	IsPublic  *bool               `json:"is_public,omitempty"`
}

// DiaryEntry is the API view of a diary entry.
type DiaryEntry struct {
	ID        uuid.UUID          `json:"id"`
	TripID    *uuid.UUID         `json:"trip_id,omitempty"`
	Title     string             `json:"title"`
	Content   *string            `json:"content,omitempty"`
	EntryDate openapi_types.Date `json:"entry_date"`
	Location  *string            `json:"location,omitempty"`
	Mood      *string            `json:"mood,omitempty"`
	Tags      []string           `json:"tags"`
	ImageURLs []string           `json:"image_urls"`
	IsPublic  *bool              `json:"is_public,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (b DiaryEntryRequest) toDomain(userID uuid.UUID) domain.DiaryEntry {
	e := domain.DiaryEntry{
		UserID:    userID,
		TripID:    b.TripID,
		Title:     b.Title,
		Content:   b.Content,
		Location:  b.Location,
		Mood:      b.Mood,
		Tags:      b.Tags,
		ImageURLs: b.ImageURLs,
		IsPublic:  b.IsPublic,
	}
	if b.EntryDate != nil {
		e.EntryDate = b.EntryDate.Time
	}
	return e
}

func entryToResponse(e domain.DiaryEntry) DiaryEntry {
	return DiaryEntry{
		ID:        e.ID,
		TripID:    e.TripID,
		Title:     e.Title,
		Content:   e.Content,
		EntryDate: openapi_types.Date{Time: e.EntryDate},
		Location:  e.Location,
		Mood:      e.Mood,
		Tags:      nonNil(e.Tags),
		ImageURLs: nonNil(e.ImageURLs),
		IsPublic:  e.IsPublic,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func entriesToResponse(entries []domain.DiaryEntry) []DiaryEntry {
	out := make([]DiaryEntry, len(entries))
	for i, e := range entries {
		out[i] = entryToResponse(e)
	}
	return out
}

// ---- packing ---------------------------------------------------------------

// PackingItemRequest is the body of POST /packing.
type PackingItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	IsEssential bool   `json:"is_essential,omitempty"`
}

// ToggleRequest is the body of PATCH /packing/{id}.
type ToggleRequest struct {
	IsChecked *bool `json:"is_checked"`
}

// PackingListResponse is everything the checklist screen renders.
type PackingListResponse struct {
	Data     []domain.PackingItem                `json:"data"`
	Groups   catalog.Groups[domain.PackingItem] `json:"groups"`
	Progress catalog.Progress                   `json:"progress"`
	Counts   map[string]int                     `json:"counts"`
}

// ResetResponse reports how many items were unchecked.
type ResetResponse struct {
	Unchecked int64 `json:"unchecked"`
}

// ---- profile / dashboard ---------------------------------------------------

// ProfileRequest is the body of PUT /profile. Absent fields are cleared.
type ProfileRequest struct {
	DisplayName          *string `json:"display_name,omitempty"`
	AvatarURL            *string `json:"avatar_url,omitempty"`
	TravelStyle          *string `json:"travel_style,omitempty"`
	PreferredBudgetRange *string `json:"preferred_budget_range,omitempty"`
}

// DashboardResponse is the home screen summary.
type DashboardResponse struct {
	Stats         domain.Stats `json:"stats"`
	UpcomingTrips []Trip       `json:"upcoming_trips"`
	RecentEntries []DiaryEntry `json:"recent_entries"`
}

// ---- auth ------------------------------------------------------------------

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
