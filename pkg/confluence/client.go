// Package confluence is a client for the Confluence Server content REST API.
package confluence

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
	"unicode/utf8"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/internal/urlutil"
)

const (
	contentPath    = "/rest/api/content"
	requestTimeout = 30 * time.Second
	maxErrorBody   = 512
)

// Client talks to /rest/api/content.
type Client struct {
	baseURL    string
	creds      security.Credentials
	httpClient *http.Client
	log        *bullets.Logger
}

// NewClient creates a Confluence client for the instance at baseURL.
func NewClient(baseURL string, creds security.Credentials) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrBaseURLRequired
	}
	u, err := urlutil.ValidateBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid confluence URL: %w", err)
	}
	return &Client{
		baseURL:    u,
		creds:      creds,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the Confluence client.
func (c *Client) SetLogger(l *bullets.Logger) {
	c.log = l
}

// LookupPageByTitle returns the first page titled title in space, or nil when
// none exists. Any status other than 200 is an error.
func (c *Client) LookupPageByTitle(ctx context.Context, space, title string) (*Page, error) {
	query := url.Values{
		"title":    {title},
		"spaceKey": {space},
		"expand":   {"version"},
	}
	target := c.baseURL + contentPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, fmt.Errorf("%w (%d) for %s", ErrUnauthorized, status, c.baseURL)
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w (%d) on page lookup: %s", ErrUnexpectedStatus, status, excerpt(body))
	}

	var found searchResponse
	if err := json.Unmarshal(body, &found); err != nil {
		return nil, fmt.Errorf("unmarshaling lookup response: %w", err)
	}
	if len(found.Results) == 0 {
		c.log.Debug(fmt.Sprintf("No page titled %q in space %s", title, space))
		return nil, nil
	}
	if len(found.Results) > 1 {
		c.log.Debug(fmt.Sprintf("%d pages titled %q in space %s, using the first", len(found.Results), title, space))
	}
	page := found.Results[0]
	return &page, nil
}

// CreatePage posts a new page.
func (c *Client) CreatePage(ctx context.Context, payload PagePayload) (*Result, error) {
	return c.write(ctx, http.MethodPost, c.baseURL+contentPath+"/", payload)
}

// UpdatePage replaces the page identified by id.
func (c *Client) UpdatePage(ctx context.Context, id string, payload PagePayload) (*Result, error) {
	return c.write(ctx, http.MethodPut, urlutil.Join(c.baseURL+contentPath, id), payload)
}

func (c *Client) write(ctx context.Context, method, target string, payload PagePayload) (*Result, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling page payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	res := &Result{StatusCode: status, Body: security.SanitizeString(string(body))}
	if res.Success() {
		var page Page
		if json.Unmarshal(body, &page) == nil && page.ID != "" {
			res.Page = &page
		}
	}
	return res, nil
}

// do sends req with credentials and returns the status and full body.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	c.creds.Apply(req)
	c.log.Debug(fmt.Sprintf("Confluence %s %s", req.Method, req.URL.Path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}
	return resp.StatusCode, body, nil
}

func excerpt(body []byte) string {
	s := security.SanitizeString(strings.TrimSpace(string(body)))
	if len(s) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
