package platform_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sgaunet/pr-report/pkg/mergeability"
	"github.com/sgaunet/pr-report/pkg/platform"
	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/sgaunet/pr-report/testing/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_GitHub(t *testing.T) {
	row := platform.Normalize(fixtures.GitHubPullRequest())

	assert.Equal(t, report.Row{
		Project:      "octocat",
		Repository:   "hello-world",
		Title:        "Add greeting & farewell",
		Author:       "hubot",
		CreatedAt:    "2024-03-01 10:30:45",
		URL:          "https://github.com/octocat/hello-world/pull/7",
		ReadyToMerge: report.Unknown,
	}, row)
}

func TestNormalize_Bitbucket(t *testing.T) {
	row := platform.Normalize(fixtures.BitbucketPullRequest())

	assert.Equal(t, "KEY", row.Project)
	assert.Equal(t, "api", row.Repository)
	assert.Equal(t, "Jane Doe", row.Author)
	assert.Equal(t, "2024-03-01 10:30:45", row.CreatedAt)
	assert.Equal(t, "https://bitbucket.example.com/projects/KEY/repos/api/pull-requests/12", row.URL)
	assert.Equal(t, report.Unknown, row.ReadyToMerge)
}

func TestNormalize_GitLab(t *testing.T) {
	row := platform.Normalize(fixtures.GitLabMergeRequest())

	assert.Equal(t, "platform", row.Project)
	assert.Equal(t, "worker", row.Repository)
	assert.Equal(t, "Ada Lovelace", row.Author)
	assert.Equal(t, "2024-03-01 10:30:45", row.CreatedAt)
	assert.Equal(t, "https://gitlab.example.com/platform/backend/worker/-/merge_requests/4", row.URL)
}

func TestNormalize_AuthorFallback(t *testing.T) {
	tests := []struct {
		name string
		pr   platform.RawPullRequest
		want string
	}{
		{
			name: "bitbucket direct display name wins",
			pr: platform.BitbucketPullRequest{
				AuthorDisplayName: "Direct", UserDisplayName: "Nested", BaseURL: "https://bb",
			},
			want: "Direct",
		},
		{
			name: "bitbucket nested user",
			pr:   platform.BitbucketPullRequest{UserDisplayName: "Nested", BaseURL: "https://bb"},
			want: "Nested",
		},
		{
			name: "bitbucket no author",
			pr:   platform.BitbucketPullRequest{BaseURL: "https://bb"},
			want: report.UnknownAuthor,
		},
		{
			name: "bitbucket blank names",
			pr:   platform.BitbucketPullRequest{AuthorDisplayName: "  ", BaseURL: "https://bb"},
			want: report.UnknownAuthor,
		},
		{
			name: "gitlab username fallback",
			pr:   platform.GitLabMergeRequest{AuthorUsername: "ada", ProjectPath: "g/p", BaseURL: "https://gl"},
			want: "ada",
		},
		{
			name: "github missing user",
			pr:   platform.GitHubPullRequest{Owner: "o", Repo: "r", WebURL: "https://github.com"},
			want: report.UnknownAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Normalize(tt.pr).Author)
		})
	}
}

func TestNormalize_DateFallback(t *testing.T) {
	tests := []struct {
		name    string
		created any
		want    string
	}{
		{name: "epoch json number", created: json.Number("1709289045000"), want: "2024-03-01 10:30:45"},
		{name: "epoch int64", created: int64(1709289045000), want: "2024-03-01 10:30:45"},
		{name: "missing", created: nil, want: report.UnknownDate},
		{name: "garbage", created: "not a date", want: report.UnknownDate},
		{name: "fractional", created: json.Number("1.5"), want: report.UnknownDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := fixtures.BitbucketPullRequest()
			pr.CreatedDate = tt.created
			assert.Equal(t, tt.want, platform.Normalize(pr).CreatedAt)
		})
	}

	t.Run("gitlab nil time", func(t *testing.T) {
		mr := fixtures.GitLabMergeRequest()
		mr.CreatedAt = nil
		assert.Equal(t, report.UnknownDate, platform.Normalize(mr).CreatedAt)
	})

	t.Run("github zero time", func(t *testing.T) {
		pr := fixtures.GitHubPullRequest()
		pr.CreatedAt = time.Time{}
		assert.Equal(t, report.UnknownDate, platform.Normalize(pr).CreatedAt)
	})
}

func TestNormalize_URLUsesConfiguredBaseNotTitle(t *testing.T) {
	pr := fixtures.BitbucketPullRequest()
	pr.Title = `"><script>alert(1)</script>`
	pr.RepoSlug = "my repo"
	pr.BaseURL = "https://scm.example.com/bitbucket/"

	row := platform.Normalize(pr)

	assert.Equal(t, "https://scm.example.com/bitbucket/projects/KEY/repos/my%20repo/pull-requests/12", row.URL)
	assert.NotContains(t, row.URL, "script")
}

func TestRef(t *testing.T) {
	assert.Equal(t, mergeability.Ref{Owner: "octocat", Repo: "hello-world", Number: 7},
		fixtures.GitHubPullRequest().Ref())
	assert.Equal(t, mergeability.Ref{Owner: "platform/backend", Repo: "worker", Number: 4},
		fixtures.GitLabMergeRequest().Ref())
	assert.Equal(t, mergeability.Ref{Owner: "KEY", Repo: "api", Number: 12},
		fixtures.BitbucketPullRequest().Ref())
}
