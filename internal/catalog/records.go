package catalog

import (
	"strings"

	"github.com/pkordes/wanderlust/internal/domain"
)

// Explore presets offered as filter chips on the destinations screen.
const (
	PresetAll      = "all"
	PresetBudget   = "budget"
	PresetLuxury   = "luxury"
	PresetTropical = "tropical"
)

// Destination facet dimensions.
const (
	FacetClimate = "climate"
	FacetBudget  = "budget"
)

// DestinationFields searches name, country and city. The facet compares
// against the named dimension: FacetClimate or FacetBudget (tier).
func DestinationFields(dimension string) Fields[domain.Destination] {
	f := Fields[domain.Destination]{
		Text: []func(domain.Destination) *string{
			func(d domain.Destination) *string { return &d.Name },
			func(d domain.Destination) *string { return &d.Country },
			func(d domain.Destination) *string { return d.City },
		},
	}
	switch dimension {
	case FacetClimate:
		f.Facet = domain.Destination.ClimateKind
	case FacetBudget:
		f.Facet = domain.Destination.BudgetTier
	}
	return f
}

// DestinationCriteria resolves an Explore preset into criteria.
// Unknown or "all" presets apply no facet.
func DestinationCriteria(query, preset string) Criteria[domain.Destination] {
	var dim, value string
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case PresetBudget:
		dim, value = FacetBudget, domain.BudgetLow
	case PresetLuxury:
		dim, value = FacetBudget, domain.BudgetHigh
	case PresetTropical:
		dim, value = FacetClimate, domain.ClimateTropical
	}
	c := Criteria[domain.Destination]{Fields: DestinationFields(dim), Text: query}
	if dim != "" {
		c.Facet = &value
	}
	return c
}

// TripFields searches title and destination; the facet is status.
func TripFields() Fields[domain.Trip] {
	return Fields[domain.Trip]{
		Text: []func(domain.Trip) *string{
			func(t domain.Trip) *string { return &t.Title },
			func(t domain.Trip) *string { return &t.DestinationName },
		},
		Facet: func(t domain.Trip) *string { return t.Status },
	}
}

// DiaryFields searches title, content and location; the facet is mood.
func DiaryFields() Fields[domain.DiaryEntry] {
	return Fields[domain.DiaryEntry]{
		Text: []func(domain.DiaryEntry) *string{
			func(e domain.DiaryEntry) *string { return &e.Title },
			func(e domain.DiaryEntry) *string { return e.Content },
			func(e domain.DiaryEntry) *string { return e.Location },
		},
		Facet: func(e domain.DiaryEntry) *string { return e.Mood },
	}
}

// PackingFields searches the item name; the facet is category.
func PackingFields() Fields[domain.PackingItem] {
	return Fields[domain.PackingItem]{
		Text: []func(domain.PackingItem) *string{
			func(i domain.PackingItem) *string { return &i.Name },
		},
		Facet: func(i domain.PackingItem) *string { return &i.Category },
	}
}

// PackingCategory is the category accessor used for grouping.
func PackingCategory(i domain.PackingItem) string { return i.Category }

// PackingChecked is the checked accessor used for progress.
func PackingChecked(i domain.PackingItem) bool { return i.IsChecked }

// Facet converts an optional query value into a facet: empty and "all" mean none.
func Facet(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" || strings.EqualFold(s, PresetAll) {
		return nil
	}
	return &s
}
