package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrUnauthorized is returned when a platform rejects the credentials. It
	// aborts collection since every further call would fail the same way.
	ErrUnauthorized = errors.New("platform rejected the credentials")

	// ErrTransientNetwork marks a project or repository that could not be
	// read. Collection continues with the next one.
	ErrTransientNetwork = errors.New("transient network error")

	errUnsupportedPlatform = errors.New("unsupported platform")
	// ErrUnsupportedPlatform is returned by [NewProvider] for unknown kinds.
	ErrUnsupportedPlatform = errUnsupportedPlatform
)
