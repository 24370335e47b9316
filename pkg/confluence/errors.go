package confluence

import "errors"

var (
	// ErrUnauthorized is returned when the lookup is rejected with 401/403.
	ErrUnauthorized = errors.New("confluence authentication failed")
	// ErrUnexpectedStatus is returned when the lookup answers a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected confluence response")
	// ErrTransport is returned when no HTTP response was received.
	ErrTransport = errors.New("confluence request failed")
	// ErrBaseURLRequired is returned when no server URL is configured.
	ErrBaseURLRequired = errors.New("confluence base URL is required")
)
