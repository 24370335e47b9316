// Package bitbucket is a thin client for the Bitbucket Server REST 1.0 API.
package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/urlutil"
)

const (
	apiPrefix      = "/rest/api/1.0"
	pageLimit      = 50
	requestTimeout = 30 * time.Second
)

// Client is a thin HTTP client for the Bitbucket Server/DC REST API.
// Credentials with a username use basic auth, otherwise the secret is sent
// as a bearer personal access token.
type Client struct {
	baseURL    string
	creds      security.Credentials
	httpClient *http.Client
	log        *bullets.Logger
}

// NewClient creates a new Bitbucket HTTP client. The baseURL should be
// the root URL of the Bitbucket instance (e.g., https://bitbucket.corp.example.com).
func NewClient(baseURL string, creds security.Credentials) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLRequired
	}
	u, err := urlutil.ValidateBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bitbucket URL: %w", err)
	}
	return &Client{
		baseURL:    u,
		creds:      creds,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the Bitbucket client.
func (c *Client) SetLogger(l *bullets.Logger) {
	c.log = l
}

// BaseURL returns the server root used for pull request links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListRepositories returns the first page of repositories of a project.
func (c *Client) ListRepositories(ctx context.Context, projectKey string) ([]Repository, error) {
	path := urlutil.Join(apiPrefix, "projects", projectKey, "repos")
	query := url.Values{"limit": {fmt.Sprint(pageLimit)}}

	var page RepositoryPage
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	c.log.Debug(fmt.Sprintf("Repositories retrieved for %s, count: %d", projectKey, len(page.Values)))
	return page.Values, nil
}

// ListOpenPullRequests returns the first page of open pull requests of a repository.
func (c *Client) ListOpenPullRequests(ctx context.Context, projectKey, repoSlug string) ([]PullRequest, error) {
	path := urlutil.Join(apiPrefix, "projects", projectKey, "repos", repoSlug, "pull-requests")
	query := url.Values{"state": {"OPEN"}, "limit": {fmt.Sprint(pageLimit)}}

	var page PullRequestPage
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	c.log.Debug(fmt.Sprintf("Pull requests retrieved for %s/%s, count: %d", projectKey, repoSlug, len(page.Values)))
	return page.Values, nil
}

// get performs a GET and decodes the JSON body into result with numbers kept
// as json.Number.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.creds.Apply(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthError{BaseURL: c.baseURL, Status: resp.StatusCode}
	case http.StatusForbidden:
		return fmt.Errorf("%w (%d) on GET %s", ErrForbidden, resp.StatusCode, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var bbErr BBErrorResponse
		if json.Unmarshal(body, &bbErr) == nil && len(bbErr.Errors) > 0 {
			msgs := make([]string, 0, len(bbErr.Errors))
			for _, e := range bbErr.Errors {
				msgs = append(msgs, e.Message)
			}
			return fmt.Errorf("%w (%d) on GET %s: %s",
				ErrUnexpectedStatus, resp.StatusCode, path,
				security.SanitizeString(strings.Join(msgs, "; ")))
		}
		return fmt.Errorf("%w (%d) on GET %s: %s",
			ErrUnexpectedStatus, resp.StatusCode, path, security.SanitizeString(string(body)))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("unmarshaling response from GET %s: %w", path, err)
	}
	return nil
}
