package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist or is not owned by the calling user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing trip title, end date before start date,
// password confirmation mismatch).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrFetchFailed wraps a storage or network failure that prevented a snapshot
// from being loaded. Handlers should map this to HTTP 503.
var ErrFetchFailed = errors.New("fetch failed")

// ErrUnauthorized is returned when credentials or a session token are invalid.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict is returned when a unique constraint would be violated,
// e.g. signing up with an email that is already registered.
var ErrConflict = errors.New("conflict")
