package domain

// Page size bounds for paged lists.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100

	// MaxPage keeps Offset far from int overflow for any Limit up to
	// MaxPageLimit.
	MaxPage = 1_000_000
)

// PaginationParams selects one 1-indexed page of an in-memory result set.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams resolves optional query values. Missing or non-positive
// values take the defaults; Page is clamped to MaxPage and Limit to
// MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the index of the first record on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// HasMore reports whether records remain after this page.
func (p PaginationParams) HasMore(total int) bool {
	return p.Offset()+p.Limit < total
}
