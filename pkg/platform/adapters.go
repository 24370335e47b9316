package platform

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/pkg/bitbucket"
	ghclient "github.com/sgaunet/pr-report/pkg/github"
	"github.com/sgaunet/pr-report/pkg/gitlab"
	"github.com/sgaunet/pr-report/pkg/mergeability"
)

// GitHubAdapter wraps a GitHub client to implement the [Provider] interface.
// Projects are user logins.
type GitHubAdapter struct {
	client ghclient.APIClient
	log    *bullets.Logger
}

// NewGitHubAdapter creates a new GitHub adapter.
func NewGitHubAdapter(client ghclient.APIClient, log *bullets.Logger) *GitHubAdapter {
	return &GitHubAdapter{client: client, log: log}
}

// PlatformName implements [Provider].
func (a *GitHubAdapter) PlatformName() string { return "GitHub" }

// ListRepositories implements [Provider].
func (a *GitHubAdapter) ListRepositories(ctx context.Context, user string) ([]Repository, error) {
	repos, err := a.client.ListRepositories(ctx, user)
	if err != nil {
		return nil, mapError(err, ghclient.ErrUnauthorized)
	}

	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		owner := r.GetOwner().GetLogin()
		if owner == "" {
			owner = user
		}
		result = append(result, Repository{Project: user, Owner: owner, Name: r.GetName()})
	}
	return result, nil
}

// ListOpenPullRequests implements [Provider].
func (a *GitHubAdapter) ListOpenPullRequests(ctx context.Context, repo Repository) ([]RawPullRequest, error) {
	prs, err := a.client.ListOpenPullRequests(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, mapError(err, ghclient.ErrUnauthorized)
	}

	result := make([]RawPullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, GitHubPullRequest{
			Project:     repo.Project,
			Owner:       repo.Owner,
			Repo:        repo.Name,
			Number:      int64(pr.GetNumber()),
			Title:       pr.GetTitle(),
			AuthorLogin: pr.GetUser().GetLogin(),
			CreatedAt:   pr.GetCreatedAt().Time,
			WebURL:      a.client.WebURL(),
		})
	}
	return result, nil
}

// FetchDetail implements mergeability.Fetcher.
func (a *GitHubAdapter) FetchDetail(ctx context.Context, ref mergeability.Ref) (mergeability.Detail, error) {
	d, err := a.client.FetchDetail(ctx, ref)
	if err != nil {
		return d, mapError(err, ghclient.ErrUnauthorized)
	}
	return d, nil
}

// BitbucketAdapter wraps a Bitbucket Server client. Projects are project keys.
// Bitbucket exposes no mergeability summary in its list API so rows stay
// Unknown.
type BitbucketAdapter struct {
	client bitbucket.APIClient
	log    *bullets.Logger
}

// NewBitbucketAdapter creates a new Bitbucket adapter.
func NewBitbucketAdapter(client bitbucket.APIClient, log *bullets.Logger) *BitbucketAdapter {
	return &BitbucketAdapter{client: client, log: log}
}

// PlatformName implements [Provider].
func (a *BitbucketAdapter) PlatformName() string { return "Bitbucket" }

// ListRepositories implements [Provider].
func (a *BitbucketAdapter) ListRepositories(ctx context.Context, projectKey string) ([]Repository, error) {
	repos, err := a.client.ListRepositories(ctx, projectKey)
	if err != nil {
		return nil, mapError(err, bitbucket.ErrUnauthorized)
	}

	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		key := r.Project.Key
		if key == "" {
			key = projectKey
		}
		result = append(result, Repository{Project: projectKey, Owner: key, Name: r.Slug})
	}
	return result, nil
}

// ListOpenPullRequests implements [Provider].
func (a *BitbucketAdapter) ListOpenPullRequests(ctx context.Context, repo Repository) ([]RawPullRequest, error) {
	prs, err := a.client.ListOpenPullRequests(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, mapError(err, bitbucket.ErrUnauthorized)
	}

	result := make([]RawPullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, BitbucketPullRequest{
			ProjectKey:        repo.Owner,
			RepoSlug:          repo.Name,
			ID:                pr.ID,
			Title:             pr.Title,
			AuthorDisplayName: pr.Author.DisplayName,
			UserDisplayName:   pr.Author.User.DisplayName,
			CreatedDate:       pr.CreatedDate,
			BaseURL:           a.client.BaseURL(),
		})
	}
	return result, nil
}

// GitLabAdapter wraps a GitLab client. Projects are group paths.
type GitLabAdapter struct {
	client gitlab.APIClient
	log    *bullets.Logger
}

// NewGitLabAdapter creates a new GitLab adapter.
func NewGitLabAdapter(client gitlab.APIClient, log *bullets.Logger) *GitLabAdapter {
	return &GitLabAdapter{client: client, log: log}
}

// PlatformName implements [Provider].
func (a *GitLabAdapter) PlatformName() string { return "GitLab" }

// ListRepositories implements [Provider].
func (a *GitLabAdapter) ListRepositories(ctx context.Context, group string) ([]Repository, error) {
	projects, err := a.client.ListGroupProjects(ctx, group)
	if err != nil {
		return nil, mapError(err, gitlab.ErrUnauthorized)
	}

	result := make([]Repository, 0, len(projects))
	for _, p := range projects {
		result = append(result, Repository{
			Project: group,
			Owner:   path.Dir(p.PathWithNamespace),
			Name:    path.Base(p.PathWithNamespace),
		})
	}
	return result, nil
}

// ListOpenPullRequests implements [Provider].
func (a *GitLabAdapter) ListOpenPullRequests(ctx context.Context, repo Repository) ([]RawPullRequest, error) {
	mrs, err := a.client.ListOpenMergeRequests(ctx, repo.FullName())
	if err != nil {
		return nil, mapError(err, gitlab.ErrUnauthorized)
	}

	result := make([]RawPullRequest, 0, len(mrs))
	for _, mr := range mrs {
		raw := GitLabMergeRequest{
			Group:       repo.Project,
			ProjectPath: repo.FullName(),
			IID:         int64(mr.IID),
			Title:       mr.Title,
			CreatedAt:   mr.CreatedAt,
			BaseURL:     a.client.BaseURL(),
		}
		if mr.Author != nil {
			raw.AuthorName = mr.Author.Name
			raw.AuthorUsername = mr.Author.Username
		}
		result = append(result, raw)
	}
	return result, nil
}

// FetchDetail implements mergeability.Fetcher.
func (a *GitLabAdapter) FetchDetail(ctx context.Context, ref mergeability.Ref) (mergeability.Detail, error) {
	d, err := a.client.FetchDetail(ctx, ref)
	if err != nil {
		return d, mapError(err, gitlab.ErrUnauthorized)
	}
	return d, nil
}

// mapError tags a client's authentication failure with [ErrUnauthorized].
func mapError(err, unauthorized error) error {
	if errors.Is(err, unauthorized) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return err
}

// Compile-time interface checks.
var (
	_ Provider             = (*GitHubAdapter)(nil)
	_ Provider             = (*BitbucketAdapter)(nil)
	_ Provider             = (*GitLabAdapter)(nil)
	_ mergeability.Fetcher = (*GitHubAdapter)(nil)
	_ mergeability.Fetcher = (*GitLabAdapter)(nil)
)
