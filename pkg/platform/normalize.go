package platform

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/sgaunet/pr-report/internal/timeutil"
	"github.com/sgaunet/pr-report/internal/urlutil"
	"github.com/sgaunet/pr-report/pkg/mergeability"
	"github.com/sgaunet/pr-report/pkg/report"
)

// RawPullRequest is a pull request as returned by one platform. The set of
// variants is closed: [GitHubPullRequest], [BitbucketPullRequest] and
// [GitLabMergeRequest].
type RawPullRequest interface {
	// Normalize maps the variant to a report row with ReadyToMerge Unknown.
	Normalize() report.Row
	// Ref identifies the pull request for a mergeability lookup.
	Ref() mergeability.Ref

	raw()
}

// Normalize maps any variant to a report row. It is pure.
func Normalize(pr RawPullRequest) report.Row {
	return pr.Normalize()
}

// GitHubPullRequest is the subset of a GitHub pull request the report uses.
type GitHubPullRequest struct {
	Project     string
	Owner       string
	Repo        string
	Number      int64
	Title       string
	AuthorLogin string
	CreatedAt   time.Time
	// WebURL is the web host, e.g. https://github.com.
	WebURL string
}

func (GitHubPullRequest) raw() {}

// Normalize implements [RawPullRequest].
func (p GitHubPullRequest) Normalize() report.Row {
	return report.Row{
		Project:      p.Project,
		Repository:   p.Repo,
		Title:        p.Title,
		Author:       firstNonEmpty(p.AuthorLogin),
		CreatedAt:    timeutil.FormatTimestamp(p.CreatedAt),
		URL:          urlutil.Join(p.WebURL, p.Owner, p.Repo, "pull", strconv.FormatInt(p.Number, 10)),
		ReadyToMerge: report.Unknown,
	}
}

// Ref implements [RawPullRequest].
func (p GitHubPullRequest) Ref() mergeability.Ref {
	return mergeability.Ref{Owner: p.Owner, Repo: p.Repo, Number: p.Number}
}

// BitbucketPullRequest is the subset of a Bitbucket Server pull request the
// report uses.
type BitbucketPullRequest struct {
	ProjectKey string
	RepoSlug   string
	ID         int64
	Title      string
	// AuthorDisplayName is author.displayName, set by older servers.
	AuthorDisplayName string
	// UserDisplayName is author.user.displayName.
	UserDisplayName string
	// CreatedDate is epoch milliseconds as decoded from JSON, kept untyped.
	CreatedDate any
	// BaseURL is the server root.
	BaseURL string
}

func (BitbucketPullRequest) raw() {}

// Normalize implements [RawPullRequest].
func (p BitbucketPullRequest) Normalize() report.Row {
	return report.Row{
		Project:    p.ProjectKey,
		Repository: p.RepoSlug,
		Title:      p.Title,
		Author:     firstNonEmpty(p.AuthorDisplayName, p.UserDisplayName),
		CreatedAt:  timeutil.FormatTimestamp(p.CreatedDate),
		URL: urlutil.Join(p.BaseURL, "projects", p.ProjectKey, "repos", p.RepoSlug,
			"pull-requests", strconv.FormatInt(p.ID, 10)),
		ReadyToMerge: report.Unknown,
	}
}

// Ref implements [RawPullRequest].
func (p BitbucketPullRequest) Ref() mergeability.Ref {
	return mergeability.Ref{Owner: p.ProjectKey, Repo: p.RepoSlug, Number: p.ID}
}

// GitLabMergeRequest is the subset of a GitLab merge request the report uses.
type GitLabMergeRequest struct {
	// Group is the group the project was listed from.
	Group string
	// ProjectPath is path_with_namespace, e.g. "platform/backend/worker".
	ProjectPath    string
	IID            int64
	Title          string
	AuthorName     string
	AuthorUsername string
	CreatedAt      *time.Time
	// BaseURL is the instance root.
	BaseURL string
}

func (GitLabMergeRequest) raw() {}

// Normalize implements [RawPullRequest].
func (p GitLabMergeRequest) Normalize() report.Row {
	segments := append(urlutil.SplitPath(p.ProjectPath), "-", "merge_requests", strconv.FormatInt(p.IID, 10))
	return report.Row{
		Project:      p.Group,
		Repository:   path.Base(p.ProjectPath),
		Title:        p.Title,
		Author:       firstNonEmpty(p.AuthorName, p.AuthorUsername),
		CreatedAt:    timeutil.FormatTimestamp(p.CreatedAt),
		URL:          urlutil.Join(p.BaseURL, segments...),
		ReadyToMerge: report.Unknown,
	}
}

// Ref implements [RawPullRequest].
func (p GitLabMergeRequest) Ref() mergeability.Ref {
	return mergeability.Ref{Owner: path.Dir(p.ProjectPath), Repo: path.Base(p.ProjectPath), Number: p.IID}
}

// firstNonEmpty returns the first non-blank name, or the unknown author sentinel.
func firstNonEmpty(names ...string) string {
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			return n
		}
	}
	return report.UnknownAuthor
}
