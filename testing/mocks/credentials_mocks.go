package mocks

import (
	"fmt"

	"github.com/sgaunet/pr-report/internal/credentials"
)

// CredentialStore is an in-memory credentials.Store with call tracking.
type CredentialStore struct {
	callTracker

	Values   map[string]string
	GetError error
	SetError error
}

// NewCredentialStore creates a store holding values.
func NewCredentialStore(values map[string]string) *CredentialStore {
	if values == nil {
		values = map[string]string{}
	}
	return &CredentialStore{Values: values}
}

// Get implements credentials.Store.
func (m *CredentialStore) Get(key string) (string, error) {
	m.trackCall("Get", map[string]any{"key": key})
	if m.GetError != nil {
		return "", m.GetError
	}
	v, ok := m.Values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", credentials.ErrNotFound, key)
	}
	return v, nil
}

// Set implements credentials.Store.
func (m *CredentialStore) Set(key, value string) error {
	m.trackCall("Set", map[string]any{"key": key})
	if m.SetError != nil {
		return m.SetError
	}
	m.Values[key] = value
	return nil
}

// PasswordPrompter is a mock credentials.PasswordPrompter.
type PasswordPrompter struct {
	callTracker

	Answer string
	Error  error
}

// Password implements credentials.PasswordPrompter.
func (m *PasswordPrompter) Password(message string) (string, error) {
	m.trackCall("Password", map[string]any{"message": message})
	return m.Answer, m.Error
}

// Ensure the mocks implement their interfaces.
var (
	_ credentials.Store            = (*CredentialStore)(nil)
	_ credentials.PasswordPrompter = (*PasswordPrompter)(nil)
)
