package domain

import (
	"time"

	"github.com/google/uuid"
)

// Moods offered by the diary editor. Mood is free text in storage; this list
// only drives the facet chips.
var Moods = []string{"happy", "excited", "relaxed", "adventurous", "nostalgic", "tired"}

// DiaryEntry is one travel memory. Entries are displayed newest entry_date first.
type DiaryEntry struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	TripID    *uuid.UUID `json:"trip_id,omitempty"`
	Title     string     `json:"title"`
	Content   *string    `json:"content,omitempty"`
	EntryDate time.Time  `json:"entry_date"`
	Location  *string    `json:"location,omitempty"`
	Mood      *string    `json:"mood,omitempty"`
	Tags      []string   `json:"tags"`
	ImageURLs []string   `json:"image_urls"`
	IsPublic  *bool      `json:"is_public,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
