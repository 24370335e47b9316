package gitlab

import "errors"

// Error definitions for GitLab API operations.
var (
	errTokenRequired = errors.New("a GitLab token is required")
	errUnauthorized  = errors.New("GitLab rejected the credentials")
	errForbidden     = errors.New("GitLab denied access")

	// Exported errors for testing and external use.
	ErrTokenRequired = errTokenRequired
	ErrUnauthorized  = errUnauthorized
	ErrForbidden     = errForbidden
)
