// Package platform provides a unified abstraction over the source-control
// platforms a report is collected from.
//
// Each platform returns pull requests in its own shape. They are carried as a
// [RawPullRequest] variant and turned into a [report.Row] by [Normalize]. The
// [Collector] walks projects, repositories and pull requests of one
// [Provider] and produces the rows of one report.
//
//	provider, _ := platform.NewProvider(platform.KindGitHub, cfg, logger)
//	collector := platform.NewCollector(provider, retry.DefaultPolicy(), logger)
//	result, _ := collector.Collect(ctx, []string{"octocat"})
//	report.WriteFile("gh-pr.csv", report.NewRowSet(result.Rows))
package platform

// Kind names a supported platform.
type Kind string

// Supported platforms.
const (
	KindGitHub    Kind = "github"
	KindBitbucket Kind = "bitbucket"
	KindGitLab    Kind = "gitlab"
)

// Repository is a platform-agnostic repository reference.
type Repository struct {
	// Project is the grouping the repository was listed from and the value of
	// the report's Project column: a GitHub user, a Bitbucket project key or a
	// GitLab group.
	Project string
	// Owner is the namespace used in API calls and links (GitHub owner login,
	// Bitbucket project key, GitLab namespace path).
	Owner string
	// Name is the repository name or slug.
	Name string
}

// FullName returns "owner/name".
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
