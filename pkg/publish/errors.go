package publish

import "errors"

var (
	// ErrStalePageVersion is returned when the server rejects an update with
	// 409, usually because the page changed after the lookup.
	ErrStalePageVersion = errors.New("page version is stale")
	// ErrRequestFailed is returned for any other non-2xx write response.
	ErrRequestFailed = errors.New("page write rejected")
	// ErrLookupFailed is returned when the page lookup cannot be completed.
	ErrLookupFailed = errors.New("page lookup failed")
	// ErrTransientNetwork is returned when a write got no HTTP response.
	ErrTransientNetwork = errors.New("network error while writing page")
	// ErrInvalidRequest is returned when space or title is empty.
	ErrInvalidRequest = errors.New("space and title are required")
)
