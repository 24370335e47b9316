package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/pr-report/pkg/mergeability"
)

// ListRepositories returns the first page of repositories owned by user.
func (c *Client) ListRepositories(ctx context.Context, user string) ([]*github.Repository, error) {
	c.log.Debug(fmt.Sprintf("Listing GitHub repositories for %s", user))

	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	repos, resp, err := c.client.Repositories.ListByUser(ctx, user, opts)
	if err != nil {
		return nil, wrapError("failed to list repositories", resp, err)
	}

	c.log.Debug(fmt.Sprintf("Repositories retrieved, count: %d", len(repos)))
	return repos, nil
}

// ListOpenPullRequests returns the first page of open pull requests of owner/repo.
func (c *Client) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]*github.PullRequest, error) {
	c.log.Debug(fmt.Sprintf("Listing open pull requests of %s/%s", owner, repo))

	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	prs, resp, err := c.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, wrapError("failed to list pull requests", resp, err)
	}

	c.log.Debug(fmt.Sprintf("Pull requests retrieved, count: %d", len(prs)))
	return prs, nil
}

// GetPullRequest fetches a single pull request. The detail endpoint is the only
// one that reports mergeable and mergeable_state.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	pr, resp, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get pull request %s/%s#%d", owner, repo, number), resp, err)
	}
	return pr, nil
}

// FetchDetail implements [mergeability.Fetcher].
func (c *Client) FetchDetail(ctx context.Context, ref mergeability.Ref) (mergeability.Detail, error) {
	pr, err := c.GetPullRequest(ctx, ref.Owner, ref.Repo, int(ref.Number))
	if err != nil {
		return mergeability.Detail{}, err
	}
	return mergeability.Detail{
		Mergeable:      pr.Mergeable,
		MergeableState: pr.MergeableState,
	}, nil
}
