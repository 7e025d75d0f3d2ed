package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip statuses. A trip with no stored status is treated as planning by the
// service layer when it is created.
const (
	TripPlanning  = "planning"
	TripActive    = "active"
	TripCompleted = "completed"
)

// TripStatuses lists the valid statuses in display order.
var TripStatuses = []string{TripPlanning, TripActive, TripCompleted}

// Trip is a single planned, ongoing, or finished journey owned by one user.
// StartDate <= EndDate is enforced by the service, not the database.
type Trip struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Title           string     `json:"title"`
	DestinationID   *uuid.UUID `json:"destination_id,omitempty"`
	DestinationName string     `json:"destination_name"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TravelerCount   *int       `json:"traveler_count,omitempty"`
	Status          *string    `json:"status,omitempty"`
	BudgetRange     *string    `json:"budget_range,omitempty"`
	Style           *string    `json:"trip_style,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
