package github

import "errors"

// Error definitions for GitHub API operations.
var (
	errTokenRequired = errors.New("a GitHub token is required")
	errUnauthorized  = errors.New("GitHub rejected the credentials")
	errForbidden     = errors.New("GitHub denied access")

	// ErrTokenRequired is returned when no token is configured.
	ErrTokenRequired = errTokenRequired
	// ErrUnauthorized is returned on 401 responses.
	ErrUnauthorized = errUnauthorized
	// ErrForbidden is returned on 403 responses, including rate limiting. It
	// concerns one resource, not the credentials.
	ErrForbidden = errForbidden
)
