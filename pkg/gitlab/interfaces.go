package gitlab

import (
	"context"

	"github.com/sgaunet/pr-report/pkg/mergeability"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// APIClient defines the interface for GitLab API operations.
// This interface enables dependency injection and facilitates black box testing
// by allowing mock implementations to replace the actual GitLab API client.
type APIClient interface {
	mergeability.Fetcher

	// ListGroupProjects returns the projects of a group and its subgroups.
	ListGroupProjects(ctx context.Context, group string) ([]*gitlab.Project, error)

	// ListOpenMergeRequests returns the opened merge requests of a project.
	ListOpenMergeRequests(ctx context.Context, projectPath string) ([]*gitlab.BasicMergeRequest, error)

	// BaseURL returns the instance root used for merge request links.
	BaseURL() string
}

// Ensure Client implements APIClient interface at compile time.
var _ APIClient = (*Client)(nil)
