package catalog

import "github.com/pkordes/wanderlust/internal/domain"

// Page returns one page of records and the total count before paging.
// An offset past the end, or one that is not a valid index, yields an empty
// page.
func Page[T any](records []T, p domain.PaginationParams) ([]T, int) {
	total := len(records)
	start := p.Offset()
	if start < 0 || start >= total || p.Limit <= 0 {
		return []T{}, total
	}
	end := total
	if p.Limit < total-start {
		end = start + p.Limit
	}
	return records[start:end], total
}
