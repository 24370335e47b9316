// Package security provides token masking, credential handling and sanitization
// of text echoed back from remote services.
package security

import (
	"fmt"
	"net/http"
)

const (
	// Minimum token length to show partial masking (show last 4 chars).
	minTokenLengthForPartialMask = 8
	// Number of characters to show when masking.
	maskShowChars = 4
	// maskEmpty is returned for empty tokens.
	maskEmpty = "[empty]"
	// maskRedacted is returned for short tokens.
	maskRedacted = "[redacted]"
)

// SecureToken wraps sensitive tokens and passwords to prevent accidental logging.
// The String() method returns a masked value, making it safe to use in logs,
// error messages, and fmt operations.
//
// Example:
//
//	token := NewSecureToken("ghp_secret123456")
//	fmt.Printf("Token: %s", token)  // Output: "Token: [token:****3456]"
type SecureToken struct {
	value string
}

// NewSecureToken creates a new SecureToken from a string value.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// String implements fmt.Stringer and returns a masked representation.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}

	if len(t.value) < minTokenLengthForPartialMask {
		return maskRedacted
	}

	return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
}

// GoString implements fmt.GoStringer to prevent leaking in %#v formatting.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the actual token value.
// Only call this when building an authenticated request. Never log the result.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty returns true if the token is empty.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}

// Credentials authenticate requests against a REST API. With a username the
// secret is sent as a basic-auth password; without one it is sent as a bearer
// personal access token.
type Credentials struct {
	Username string
	Secret   SecureToken
}

// String describes the credentials without revealing the secret.
func (c Credentials) String() string {
	if c.Username == "" {
		return "bearer " + c.Secret.String()
	}
	return "basic " + c.Username + ":" + c.Secret.String()
}

// GoString implements fmt.GoStringer to prevent leaking in %#v formatting.
func (c Credentials) GoString() string {
	return c.String()
}

// Method returns "basic", "bearer" or "none".
func (c Credentials) Method() string {
	switch {
	case c.Secret.IsEmpty():
		return "none"
	case c.Username == "":
		return "bearer"
	default:
		return "basic"
	}
}

// Apply sets the Authorization header on req. Empty credentials leave the
// request anonymous.
func (c Credentials) Apply(req *http.Request) {
	switch c.Method() {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+c.Secret.Value())
	case "basic":
		req.SetBasicAuth(c.Username, c.Secret.Value())
	}
}
