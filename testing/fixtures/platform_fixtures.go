package fixtures

import (
	"encoding/json"
	"time"

	"github.com/sgaunet/pr-report/pkg/platform"
)

// CreatedAt is the creation time used by the raw pull request fixtures.
var CreatedAt = time.Date(2024, time.March, 1, 10, 30, 45, 0, time.UTC)

// GitHubRepository returns octocat/hello-world.
func GitHubRepository() platform.Repository {
	return platform.Repository{Project: "octocat", Owner: "octocat", Name: "hello-world"}
}

// GitHubPullRequest returns a raw GitHub pull request of [GitHubRepository].
func GitHubPullRequest() platform.GitHubPullRequest {
	return platform.GitHubPullRequest{
		Project:     "octocat",
		Owner:       "octocat",
		Repo:        "hello-world",
		Number:      7,
		Title:       "Add greeting & farewell",
		AuthorLogin: "hubot",
		CreatedAt:   CreatedAt,
		WebURL:      "https://github.com",
	}
}

// BitbucketRepository returns KEY/api.
func BitbucketRepository() platform.Repository {
	return platform.Repository{Project: "KEY", Owner: "KEY", Name: "api"}
}

// BitbucketPullRequest returns a raw Bitbucket pull request of [BitbucketRepository]
// whose author is only known through the nested user.
func BitbucketPullRequest() platform.BitbucketPullRequest {
	return platform.BitbucketPullRequest{
		ProjectKey:      "KEY",
		RepoSlug:        "api",
		ID:              12,
		Title:           "Upgrade <framework> to v2",
		UserDisplayName: "Jane Doe",
		CreatedDate:     json.Number("1709289045000"),
		BaseURL:         "https://bitbucket.example.com",
	}
}

// GitLabRepository returns platform/backend/worker listed from group platform.
func GitLabRepository() platform.Repository {
	return platform.Repository{Project: "platform", Owner: "platform/backend", Name: "worker"}
}

// GitLabMergeRequest returns a raw GitLab merge request of [GitLabRepository].
func GitLabMergeRequest() platform.GitLabMergeRequest {
	created := CreatedAt
	return platform.GitLabMergeRequest{
		Group:          "platform",
		ProjectPath:    "platform/backend/worker",
		IID:            4,
		Title:          "Bump deps",
		AuthorName:     "Ada Lovelace",
		AuthorUsername: "ada",
		CreatedAt:      &created,
		BaseURL:        "https://gitlab.example.com",
	}
}
