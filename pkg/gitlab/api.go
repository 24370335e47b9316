package gitlab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/mergeability"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// ListGroupProjects returns the first page of non-archived projects of a group,
// subgroups included.
func (c *Client) ListGroupProjects(ctx context.Context, group string) ([]*gitlab.Project, error) {
	c.log.Debug(fmt.Sprintf("Listing GitLab projects of group %s", group))

	projects, resp, err := c.client.Groups.ListGroupProjects(group, &gitlab.ListGroupProjectsOptions{
		ListOptions:      gitlab.ListOptions{PerPage: perPage},
		IncludeSubGroups: gitlab.Ptr(true),
		Archived:         gitlab.Ptr(false),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, wrapError("failed to list group projects", resp, err)
	}

	c.log.Debug(fmt.Sprintf("Projects retrieved, count: %d", len(projects)))
	return projects, nil
}

// ListOpenMergeRequests returns the first page of opened merge requests of a
// project identified by its path with namespace.
func (c *Client) ListOpenMergeRequests(ctx context.Context, projectPath string) ([]*gitlab.BasicMergeRequest, error) {
	c.log.Debug(fmt.Sprintf("Listing opened merge requests of %s", projectPath))

	mrs, resp, err := c.client.MergeRequests.ListProjectMergeRequests(projectPath, &gitlab.ListProjectMergeRequestsOptions{
		ListOptions: gitlab.ListOptions{PerPage: perPage},
		State:       gitlab.Ptr("opened"),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, wrapError("failed to list merge requests", resp, err)
	}

	c.log.Debug(fmt.Sprintf("Merge requests retrieved, count: %d", len(mrs)))
	return mrs, nil
}

// GetMergeRequest fetches full merge request details.
func (c *Client) GetMergeRequest(ctx context.Context, projectPath string, iid int64) (*gitlab.MergeRequest, error) {
	mr, resp, err := c.client.MergeRequests.GetMergeRequest(projectPath, int(iid), nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get merge request details of %s!%d", projectPath, iid), resp, err)
	}
	return mr, nil
}

// FetchDetail implements [mergeability.Fetcher]. ref.Owner is the namespace
// and ref.Repo the project path.
func (c *Client) FetchDetail(ctx context.Context, ref mergeability.Ref) (mergeability.Detail, error) {
	mr, err := c.GetMergeRequest(ctx, ref.Owner+"/"+ref.Repo, ref.Number)
	if err != nil {
		return mergeability.Detail{}, err
	}
	return DetailFromStatus(mr.DetailedMergeStatus), nil
}

func wrapError(op string, resp *gitlab.Response, err error) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w (status %d)", op, errUnauthorized, resp.StatusCode)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w: %w", op, errForbidden, security.SanitizeError(err))
		}
	}
	return fmt.Errorf("%s: %w", op, security.SanitizeError(err))
}
