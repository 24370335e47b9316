package bitbucket

import "context"

// APIClient defines the Bitbucket operations used by the report. It allows
// mock implementations to replace the HTTP client in tests.
type APIClient interface {
	ListRepositories(ctx context.Context, projectKey string) ([]Repository, error)
	ListOpenPullRequests(ctx context.Context, projectKey, repoSlug string) ([]PullRequest, error)
	BaseURL() string
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
