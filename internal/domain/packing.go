package domain

import (
	"time"

	"github.com/google/uuid"
)

// Packing categories, in display order. The set is closed: items may only be
// filed under one of these.
const (
	CategoryDocuments   = "documents"
	CategoryElectronics = "electronics"
	CategoryClothes     = "clothes"
	CategoryToiletries  = "toiletries"
	CategoryAccessories = "accessories"
	CategoryMedication  = "medication"
	CategoryOther       = "other"
)

// PackingCategories is the ordered category enumeration used for grouping.
var PackingCategories = []string{
	CategoryDocuments,
	CategoryElectronics,
	CategoryClothes,
	CategoryToiletries,
	CategoryAccessories,
	CategoryMedication,
	CategoryOther,
}

// IsPackingCategory reports whether c is one of PackingCategories.
func IsPackingCategory(c string) bool {
	for _, v := range PackingCategories {
		if v == c {
			return true
		}
	}
	return false
}

// PackingItem is one line of a user's packing checklist.
type PackingItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	IsEssential bool      `json:"is_essential"`
	IsChecked   bool      `json:"is_checked"`
	CustomAdded bool      `json:"custom_added"`
	CreatedAt   time.Time `json:"created_at"`
}
