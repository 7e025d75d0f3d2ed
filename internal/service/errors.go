package service

import (
	"fmt"

	"github.com/pkordes/wanderlust/internal/domain"
)

// invalid builds a domain.ErrValidation carrying a human-readable message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

// fetchFailed marks a snapshot read that could not be served.
func fetchFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrFetchFailed, err)
}
