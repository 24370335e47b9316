// Package publish creates or updates the report page in the wiki, keyed by
// space and title, with optimistic versioning.
//
// The lookup and the write are two requests. A concurrent editor can bump the
// version in between, in which case the update fails with
// [ErrStalePageVersion] and nothing is retried.
package publish

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/pkg/confluence"
	"github.com/sgaunet/pr-report/pkg/render"
	"github.com/sgaunet/pr-report/pkg/report"
)

// Action is the write a publish performed or planned.
type Action string

// Possible actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionAborted Action = "aborted"
)

// PageStore is the subset of the wiki API the coordinator needs.
type PageStore interface {
	LookupPageByTitle(ctx context.Context, space, title string) (*confluence.Page, error)
	CreatePage(ctx context.Context, payload confluence.PagePayload) (*confluence.Result, error)
	UpdatePage(ctx context.Context, id string, payload confluence.PagePayload) (*confluence.Result, error)
}

// Request identifies the page to publish and carries its storage markup.
type Request struct {
	Space    string
	Title    string
	ParentID string
	Body     string
	// DryRun performs the lookup and reports the planned action without writing.
	DryRun bool
}

// Outcome describes what happened. StatusCode and Body are the raw write
// response and are zero for aborted and dry runs.
type Outcome struct {
	Action     Action
	Success    bool
	DryRun     bool
	StatusCode int
	Body       string
	PageID     string
	Version    int
	Warning    string
}

// Coordinator drives lookup then create or update against a PageStore.
type Coordinator struct {
	store PageStore
	log   *bullets.Logger
}

// NewCoordinator creates a coordinator writing to store.
func NewCoordinator(store PageStore) *Coordinator {
	return &Coordinator{
		store: store,
		log:   logger.NoLogger(),
	}
}

// SetLogger sets the logger for the coordinator.
func (c *Coordinator) SetLogger(l *bullets.Logger) {
	c.log = l
}

// Publish creates the page when absent and updates it otherwise. A page found
// without a usable version is left untouched: the outcome is aborted with a
// warning and the error is nil.
func (c *Coordinator) Publish(ctx context.Context, req Request) (*Outcome, error) {
	if req.Space == "" || req.Title == "" {
		return nil, ErrInvalidRequest
	}

	existing, err := c.store.LookupPageByTitle(ctx, req.Space, req.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	payload := confluence.NewPagePayload(req.Space, req.Title, req.ParentID, req.Body)

	if existing == nil {
		c.log.Debug(fmt.Sprintf("No page %q in space %s, creating it", req.Title, req.Space))
		if req.DryRun {
			return &Outcome{Action: ActionCreated, Success: true, DryRun: true, Version: 1}, nil
		}
		res, err := c.store.CreatePage(ctx, payload)
		return c.finish(ActionCreated, res, err, "", 1)
	}

	if existing.Version == nil || existing.Version.Number < 1 {
		warning := fmt.Sprintf("page %q (id %s) has no version number, refusing to update it", req.Title, existing.ID)
		c.log.Warn(warning)
		return &Outcome{Action: ActionAborted, PageID: existing.ID, Warning: warning}, nil
	}

	next := existing.Version.Number + 1
	payload.ID = existing.ID
	payload.Version = &confluence.Version{Number: next, MinorEdit: true}
	c.log.Debug(fmt.Sprintf("Page %q found (id %s, version %d), updating to version %d",
		req.Title, existing.ID, existing.Version.Number, next))

	if req.DryRun {
		return &Outcome{Action: ActionUpdated, Success: true, DryRun: true, PageID: existing.ID, Version: next}, nil
	}
	res, err := c.store.UpdatePage(ctx, existing.ID, payload)
	return c.finish(ActionUpdated, res, err, existing.ID, next)
}

// PublishReport merges sets, renders them as an HTML table and publishes the
// result. req.Body is ignored.
func (c *Coordinator) PublishReport(ctx context.Context, req Request, sets ...report.RowSet) (*Outcome, error) {
	merged, err := report.Aggregate(sets...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reports: %w", err)
	}
	body, err := render.HTMLTable(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	c.log.Debug(fmt.Sprintf("Rendered %d pull request(s) for page %q", merged.Len(), req.Title))

	req.Body = body
	return c.Publish(ctx, req)
}

func (c *Coordinator) finish(action Action, res *confluence.Result, err error, pageID string, version int) (*Outcome, error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &Outcome{Action: action, PageID: pageID}, fmt.Errorf("page %s interrupted: %w", action, err)
		}
		return &Outcome{Action: action, PageID: pageID}, fmt.Errorf("%w: %w", ErrTransientNetwork, err)
	}

	out := &Outcome{
		Action:     action,
		Success:    res.Success(),
		StatusCode: res.StatusCode,
		Body:       res.Body,
		PageID:     pageID,
		Version:    version,
	}
	if res.Page != nil && res.Page.ID != "" {
		out.PageID = res.Page.ID
	}

	switch {
	case out.Success:
		return out, nil
	case action == ActionUpdated && res.StatusCode == http.StatusConflict:
		return out, fmt.Errorf("%w: update to version %d rejected: %s", ErrStalePageVersion, version, res.Body)
	default:
		return out, fmt.Errorf("%w: failed to %s page: %d - %s",
			ErrRequestFailed, verb(action), res.StatusCode, res.Body)
	}
}

func verb(a Action) string {
	if a == ActionCreated {
		return "create"
	}
	return "update"
}
