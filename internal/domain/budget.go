package domain

import "strings"

// budgetTierOf picks the first known tier word appearing in s.
// "Moderate" counts as medium; "Luxury" counts as high.
func budgetTierOf(s string) string {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "low"):
		return BudgetLow
	case strings.Contains(l, "high"), strings.Contains(l, "luxury"):
		return BudgetHigh
	case strings.Contains(l, "medium"), strings.Contains(l, "moderate"), strings.Contains(l, "mid"):
		return BudgetMedium
	}
	return ""
}
