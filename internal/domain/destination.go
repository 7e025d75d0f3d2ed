// Package domain contains the core record types for the Wanderlust API.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (catalog, repo, service, handler).
//
// Nullable columns are pointer fields. A nil pointer means "absent"; nothing in
// the core substitutes an empty string or zero for it.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Destination is read-only reference data shown on the Explore screen.
type Destination struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	City            *string   `json:"city,omitempty"`
	Climate         *string   `json:"climate,omitempty"`
	AverageBudget   *string   `json:"average_budget,omitempty"` // free text, e.g. "Low ($50-80/day)"
	BestTimeToVisit *string   `json:"best_time_to_visit,omitempty"`
	Description     *string   `json:"description,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Activities      []string  `json:"popular_activities"`
	CreatedAt       time.Time `json:"created_at"`
}

// Budget tiers derived from Destination.AverageBudget.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// BudgetTier returns the tier named in AverageBudget, or nil when the budget is
// absent or names no known tier.
func (d Destination) BudgetTier() *string {
	if d.AverageBudget == nil {
		return nil
	}
	tier := budgetTierOf(*d.AverageBudget)
	if tier == "" {
		return nil
	}
	return &tier
}

// ClimateTropical is the climate kind of any climate mentioning "tropical",
// e.g. "Tropical monsoon" or "Subtropical".
const ClimateTropical = "tropical"

// ClimateKind returns ClimateTropical for tropical climates and otherwise the
// trimmed, lower-cased climate, or nil when absent.
func (d Destination) ClimateKind() *string {
	if d.Climate == nil {
		return nil
	}
	c := strings.ToLower(strings.TrimSpace(*d.Climate))
	if strings.Contains(c, ClimateTropical) {
		c = ClimateTropical
	}
	return &c
}
