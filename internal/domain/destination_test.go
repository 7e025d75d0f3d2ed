package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/wanderlust/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestDestination_BudgetTier(t *testing.T) {
	cases := []struct {
		budget *string
		want   *string
	}{
		{strPtr("Low ($50-80/day)"), strPtr(domain.BudgetLow)},
		{strPtr("High ($250+/day)"), strPtr(domain.BudgetHigh)},
		{strPtr("Luxury"), strPtr(domain.BudgetHigh)},
		{strPtr("Moderate"), strPtr(domain.BudgetMedium)},
		{strPtr("Budget-friendly"), nil},
		{strPtr(""), nil},
		{nil, nil},
	}
	for _, tc := range cases {
		d := domain.Destination{AverageBudget: tc.budget}
		assert.Equal(t, tc.want, d.BudgetTier(), "budget %v", tc.budget)
	}
}

func TestDestination_ClimateKind(t *testing.T) {
	cases := []struct {
		climate *string
		want    *string
	}{
		{strPtr("Tropical"), strPtr(domain.ClimateTropical)},
		{strPtr(" Tropical monsoon "), strPtr(domain.ClimateTropical)},
		{strPtr("Humid subtropical"), strPtr(domain.ClimateTropical)},
		{strPtr(" Mediterranean "), strPtr("mediterranean")},
		{nil, nil},
	}
	for _, tc := range cases {
		d := domain.Destination{Climate: tc.climate}
		assert.Equal(t, tc.want, d.ClimateKind(), "climate %v", tc.climate)
	}
}
