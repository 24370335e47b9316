package bitbucket

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is matched by every [AuthError].
	ErrUnauthorized = errors.New("bitbucket authentication failed")
	// ErrForbidden is returned on 403: the credentials are valid but cannot
	// read the resource.
	ErrForbidden = errors.New("bitbucket denied access")
	// ErrUnexpectedStatus is returned for non-2xx responses other than 401 and 403.
	ErrUnexpectedStatus = errors.New("unexpected bitbucket response")
	// ErrBaseURLRequired is returned when no server URL is configured.
	ErrBaseURLRequired = errors.New("bitbucket base URL is required")
)

// AuthError reports rejected credentials.
type AuthError struct {
	BaseURL string
	Status  int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (%d): check your credentials for %s", e.Status, e.BaseURL)
}

// Is makes errors.Is(err, ErrUnauthorized) true.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}
