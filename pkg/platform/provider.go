package platform

import "context"

// Provider lists repositories and open pull requests of one platform.
//
// Providers that also implement mergeability.Fetcher get their rows'
// Ready to Merge column resolved by the [Collector].
type Provider interface {
	// PlatformName returns "GitHub", "Bitbucket" or "GitLab".
	PlatformName() string

	// ListRepositories returns the repositories of a project (GitHub user,
	// Bitbucket project key, GitLab group).
	ListRepositories(ctx context.Context, project string) ([]Repository, error)

	// ListOpenPullRequests returns the open pull requests of a repository.
	ListOpenPullRequests(ctx context.Context, repo Repository) ([]RawPullRequest, error)
}
