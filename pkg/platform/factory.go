package platform

import (
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/bitbucket"
	"github.com/sgaunet/pr-report/pkg/config"
	ghclient "github.com/sgaunet/pr-report/pkg/github"
	"github.com/sgaunet/pr-report/pkg/gitlab"
)

// NewProvider creates the Provider implementation for kind from cfg. Tokens
// are expected to be resolved into cfg already.
//
//nolint:ireturn // Factory function must return interface to enable platform abstraction.
func NewProvider(kind Kind, cfg *config.Config, logger *bullets.Logger) (Provider, error) {
	switch kind {
	case KindGitHub:
		client, err := ghclient.NewClient(ghclient.Config{
			Token:  cfg.GitHub.Token,
			APIURL: cfg.GitHub.APIURL,
			WebURL: cfg.GitHub.WebURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitHubAdapter(client, logger), nil

	case KindBitbucket:
		creds := security.Credentials{
			Username: cfg.Bitbucket.Username,
			Secret:   cfg.Bitbucket.Token,
		}
		security.DebugAuth(logger, "Bitbucket", map[string]string{"method": creds.Method()})
		client, err := bitbucket.NewClient(cfg.Bitbucket.URL, creds)
		if err != nil {
			return nil, fmt.Errorf("failed to create Bitbucket client: %w", err)
		}
		client.SetLogger(logger)
		return NewBitbucketAdapter(client, logger), nil

	case KindGitLab:
		client, err := gitlab.NewClient(gitlab.Config{
			Token:   cfg.GitLab.Token,
			BaseURL: cfg.GitLab.URL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create GitLab client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitLabAdapter(client, logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedPlatform, kind)
	}
}
