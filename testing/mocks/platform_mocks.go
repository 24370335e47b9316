package mocks

import (
	"context"

	"github.com/sgaunet/pr-report/pkg/mergeability"
	"github.com/sgaunet/pr-report/pkg/platform"
)

// PlatformProvider is a mock implementation of platform.Provider with call tracking.
type PlatformProvider struct {
	callTracker

	// Configurable responses, keyed by project for repositories and by
	// Repository.FullName() for pull requests.
	PlatformNameValue  string
	Repositories       map[string][]platform.Repository
	RepositoriesErrors map[string]error
	PullRequests       map[string][]platform.RawPullRequest
	PullRequestsErrors map[string]error
	OnListRepositories func(project string)
}

// NewPlatformProvider creates a new mock platform provider.
func NewPlatformProvider() *PlatformProvider {
	return &PlatformProvider{
		PlatformNameValue:  "MockPlatform",
		Repositories:       make(map[string][]platform.Repository),
		RepositoriesErrors: make(map[string]error),
		PullRequests:       make(map[string][]platform.RawPullRequest),
		PullRequestsErrors: make(map[string]error),
	}
}

// PlatformName implements platform.Provider.
func (m *PlatformProvider) PlatformName() string {
	return m.PlatformNameValue
}

// ListRepositories implements platform.Provider.
func (m *PlatformProvider) ListRepositories(_ context.Context, project string) ([]platform.Repository, error) {
	m.trackCall("ListRepositories", map[string]any{"project": project})
	if m.OnListRepositories != nil {
		m.OnListRepositories(project)
	}
	if err := m.RepositoriesErrors[project]; err != nil {
		return nil, err
	}
	return m.Repositories[project], nil
}

// ListOpenPullRequests implements platform.Provider.
func (m *PlatformProvider) ListOpenPullRequests(_ context.Context, repo platform.Repository) ([]platform.RawPullRequest, error) {
	m.trackCall("ListOpenPullRequests", map[string]any{"repo": repo})
	if err := m.PullRequestsErrors[repo.FullName()]; err != nil {
		return nil, err
	}
	return m.PullRequests[repo.FullName()], nil
}

// MergeableProvider is a PlatformProvider that also resolves mergeability.
type MergeableProvider struct {
	*PlatformProvider
	*DetailFetcher
}

// NewMergeableProvider creates a provider whose detail lookups replay responses.
func NewMergeableProvider(responses ...DetailResponse) *MergeableProvider {
	return &MergeableProvider{
		PlatformProvider: NewPlatformProvider(),
		DetailFetcher:    NewDetailFetcher(responses...),
	}
}

// Ensure the mocks implement the interfaces.
var (
	_ platform.Provider     = (*PlatformProvider)(nil)
	_ platform.Provider     = (*MergeableProvider)(nil)
	_ mergeability.Fetcher = (*MergeableProvider)(nil)
)
