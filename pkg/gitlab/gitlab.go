// Package gitlab provides GitLab API client operations.
package gitlab

import (
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/urlutil"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const (
	// DefaultBaseURL is used when no instance URL is configured.
	DefaultBaseURL = "https://gitlab.com"
	perPage        = 100
)

// Config configures a [Client].
type Config struct {
	Token security.SecureToken
	// BaseURL is the instance root (without /api/v4). Empty means [DefaultBaseURL].
	BaseURL string
}

// Client represents a GitLab API client wrapper.
type Client struct {
	client  *gitlab.Client
	baseURL string
	log     *bullets.Logger
}

// NewClient creates a new GitLab client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token.IsEmpty() {
		return nil, errTokenRequired
	}

	baseURL := DefaultBaseURL
	if cfg.BaseURL != "" {
		u, err := urlutil.ValidateBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitLab URL: %w", err)
		}
		baseURL = u
	}

	client, err := gitlab.NewClient(cfg.Token.Value(), gitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &Client{
		client:  client,
		baseURL: baseURL,
		log:     logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitLab client.
func (c *Client) SetLogger(logger *bullets.Logger) {
	c.log = logger
	c.log.Debug("GitLab client logger configured")
}

// BaseURL returns the instance root used for merge request links.
func (c *Client) BaseURL() string {
	return c.baseURL
}
