package github

import (
	"context"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/pr-report/pkg/mergeability"
)

// APIClient defines the interface for GitHub API operations.
// This interface enables dependency injection and facilitates black box testing
// by allowing mock implementations to replace the actual GitHub API client.
type APIClient interface {
	mergeability.Fetcher

	// ListRepositories returns the repositories owned by a user.
	ListRepositories(ctx context.Context, user string) ([]*github.Repository, error)

	// ListOpenPullRequests returns the open pull requests of a repository.
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]*github.PullRequest, error)

	// WebURL returns the base URL used for pull request links.
	WebURL() string
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
