package credentials

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

// ServiceName is the keyring service holding pr-report secrets.
const ServiceName = "pr-report"

// Keyring keys of the stored secrets.
const (
	KeyGitHubToken        = "github-token"
	KeyBitbucketToken     = "bitbucket-token"
	KeyGitLabToken        = "gitlab-token"
	KeyConfluencePassword = "confluence-password"
)

// ErrNotFound is returned when the keyring holds no value for a key or cannot be opened.
var ErrNotFound = errors.New("credential not found in keyring")

// Store reads and writes secrets by key.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Keyring is a Store backed by the system keyring.
type Keyring struct {
	open func() (keyring.Keyring, error)
}

// NewKeyring creates a store on the system keyring. The keyring is opened on
// every access.
func NewKeyring() *Keyring {
	return &Keyring{open: openKeyring}
}

func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/pr-report/credentials",
		FilePasswordFunc:         keyring.TerminalPrompt,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get returns the secret stored under key. A keyring that cannot be opened
// is reported as ErrNotFound.
func (k *Keyring) Get(key string) (string, error) {
	ring, err := k.open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	item, err := ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}
	if len(item.Data) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return string(item.Data), nil
}

// Set stores value under key.
func (k *Keyring) Set(key, value string) error {
	ring, err := k.open()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: ServiceName + " " + key,
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}
	return nil
}

var _ Store = (*Keyring)(nil)
