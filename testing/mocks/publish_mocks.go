package mocks

import (
	"context"

	"github.com/sgaunet/pr-report/pkg/confluence"
	"github.com/sgaunet/pr-report/pkg/publish"
)

// PageStore is a mock implementation of publish.PageStore with call tracking.
type PageStore struct {
	callTracker

	// Configurable responses
	LookupResponse *confluence.Page
	LookupError    error
	CreateResponse *confluence.Result
	CreateError    error
	UpdateResponse *confluence.Result
	UpdateError    error
}

// NewPageStore creates a store that finds no page and accepts writes with 200.
func NewPageStore() *PageStore {
	return &PageStore{
		CreateResponse: &confluence.Result{StatusCode: 200, Body: `{"id":"1"}`},
		UpdateResponse: &confluence.Result{StatusCode: 200, Body: `{"id":"1"}`},
	}
}

// LookupPageByTitle implements publish.PageStore.
func (m *PageStore) LookupPageByTitle(_ context.Context, space, title string) (*confluence.Page, error) {
	m.trackCall("LookupPageByTitle", map[string]any{
		"space": space,
		"title": title,
	})
	return m.LookupResponse, m.LookupError
}

// CreatePage implements publish.PageStore.
func (m *PageStore) CreatePage(_ context.Context, payload confluence.PagePayload) (*confluence.Result, error) {
	m.trackCall("CreatePage", map[string]any{
		"payload": payload,
	})
	return m.CreateResponse, m.CreateError
}

// UpdatePage implements publish.PageStore.
func (m *PageStore) UpdatePage(_ context.Context, id string, payload confluence.PagePayload) (*confluence.Result, error) {
	m.trackCall("UpdatePage", map[string]any{
		"id":      id,
		"payload": payload,
	})
	return m.UpdateResponse, m.UpdateError
}

// Writes returns the number of create and update calls.
func (m *PageStore) Writes() int {
	return m.GetCallCount("CreatePage") + m.GetCallCount("UpdatePage")
}

// Ensure PageStore implements publish.PageStore interface.
var _ publish.PageStore = (*PageStore)(nil)
