// Package credentials resolves the secrets used against the remote services.
//
// A secret is looked up, in order, in the command line flag, the environment,
// the system keyring and finally an interactive prompt. Resolved values are
// wrapped in security.SecureToken and never logged.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/ui"
)

// Source names where a secret was found.
type Source string

// Secret sources, in lookup order.
const (
	SourceNone    Source = "none"
	SourceFlag    Source = "flag"
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
	SourcePrompt  Source = "prompt"
)

// ErrCredentialMissing is returned when a required secret was found nowhere.
var ErrCredentialMissing = errors.New("credential not provided")

// PasswordPrompter asks for a secret.
type PasswordPrompter interface {
	Password(message string) (string, error)
}

// Lookup describes where to look for one secret.
type Lookup struct {
	// Service names the secret in logs and errors, e.g. "GitHub".
	Service string
	// Flag is the value given on the command line, if any.
	Flag       string
	EnvVar     string
	KeyringKey string
	// Prompt is the message shown when asking interactively. No prompt is
	// shown when empty.
	Prompt   string
	Required bool
}

// Resolver looks secrets up.
type Resolver struct {
	store       Store
	prompter    PasswordPrompter
	getenv      func(string) string
	interactive func() bool
	log         *bullets.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore sets the keyring store. A nil store disables keyring lookups.
func WithStore(s Store) Option {
	return func(r *Resolver) { r.store = s }
}

// WithPrompter sets the prompter. A nil prompter disables prompts.
func WithPrompter(p PasswordPrompter) Option {
	return func(r *Resolver) { r.prompter = p }
}

// WithGetenv replaces os.Getenv.
func WithGetenv(fn func(string) string) Option {
	return func(r *Resolver) { r.getenv = fn }
}

// WithInteractive replaces the terminal detection used before prompting.
func WithInteractive(fn func() bool) Option {
	return func(r *Resolver) { r.interactive = fn }
}

// NewResolver creates a resolver on the system keyring and survey prompts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		store:       NewKeyring(),
		prompter:    ui.NewPrompter(),
		getenv:      os.Getenv,
		interactive: ui.IsInteractive,
		log:         logger.NoLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLogger sets the logger for the resolver.
func (r *Resolver) SetLogger(l *bullets.Logger) {
	r.log = l
}

// Resolve returns the secret described by in and where it came from. An
// absent optional secret yields an empty token and SourceNone.
func (r *Resolver) Resolve(in Lookup) (security.SecureToken, Source, error) {
	value, source, err := r.find(in)
	if err != nil {
		return security.SecureToken{}, SourceNone, err
	}

	if value == "" {
		if in.Required {
			return security.SecureToken{}, SourceNone, fmt.Errorf("%w: %s (set %s or store it with 'pr-report login')",
				ErrCredentialMissing, in.Service, in.EnvVar)
		}
		r.log.Debug(fmt.Sprintf("No %s credential found", in.Service))
		return security.SecureToken{}, SourceNone, nil
	}

	security.DebugAuth(r.log, in.Service, map[string]string{
		"source": string(source),
	})
	return security.NewSecureToken(value), source, nil
}

func (r *Resolver) find(in Lookup) (string, Source, error) {
	if in.Flag != "" {
		return in.Flag, SourceFlag, nil
	}

	if in.EnvVar != "" {
		if v := r.getenv(in.EnvVar); v != "" {
			return v, SourceEnv, nil
		}
	}

	if in.KeyringKey != "" && r.store != nil {
		v, err := r.store.Get(in.KeyringKey)
		switch {
		case err == nil && v != "":
			return v, SourceKeyring, nil
		case err != nil && !errors.Is(err, ErrNotFound):
			r.log.Warn(fmt.Sprintf("Keyring lookup for %s failed: %s", in.Service, security.SanitizeError(err)))
		}
	}

	if in.Prompt == "" || r.prompter == nil || !r.interactive() {
		return "", SourceNone, nil
	}
	v, err := r.prompter.Password(in.Prompt)
	if err != nil {
		return "", SourceNone, fmt.Errorf("failed to read %s credential: %w", in.Service, err)
	}
	return v, SourcePrompt, nil
}
