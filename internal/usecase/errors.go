package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrPrecondition marks a lifecycle action attempted against a match
	// whose current status does not allow it.
	ErrPrecondition = errors.New("precondition failed")
	// ErrPartialFetch marks a multi-fetch where at least one leg succeeded
	// and at least one failed; the successful half is still returned.
	ErrPartialFetch = errors.New("partial fetch failure")
)
