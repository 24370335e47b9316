// Package github provides GitHub API client operations.
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/urlutil"
	"golang.org/x/oauth2"
)

const (
	// DefaultWebURL is the host used to build pull request links.
	DefaultWebURL = "https://github.com"
	perPage       = 100
)

// Config configures a [Client].
type Config struct {
	Token security.SecureToken
	// APIURL targets a GitHub Enterprise server. Empty means api.github.com.
	APIURL string
	// WebURL is the base of pull request links. Empty means [DefaultWebURL].
	WebURL string
}

// Client represents a GitHub API client wrapper.
type Client struct {
	client *github.Client
	webURL string
	log    *bullets.Logger
}

// NewClient creates a new GitHub client authenticated with cfg.Token.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token.IsEmpty() {
		return nil, errTokenRequired
	}

	webURL := DefaultWebURL
	if cfg.WebURL != "" {
		u, err := urlutil.ValidateBaseURL(cfg.WebURL)
		if err != nil {
			return nil, fmt.Errorf("invalid web URL: %w", err)
		}
		webURL = u
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token.Value()},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	if cfg.APIURL != "" {
		apiURL, err := urlutil.ValidateBaseURL(cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL: %w", err)
		}
		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure enterprise URLs: %w", err)
		}
	}

	return &Client{
		client: client,
		webURL: webURL,
		log:    logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitHub client.
func (c *Client) SetLogger(l *bullets.Logger) {
	c.log = l
}

// WebURL returns the base URL used for pull request links.
func (c *Client) WebURL() string {
	return c.webURL
}

// wrapError maps a 401 to [ErrUnauthorized] and a 403 to [ErrForbidden].
func wrapError(op string, resp *github.Response, err error) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w (status %d)", op, errUnauthorized, resp.StatusCode)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %w", op, errForbidden, security.SanitizeError(err))
		}
	}
	return fmt.Errorf("%s: %w", op, security.SanitizeError(err))
}
