// Package fixtures provides shared test data.
package fixtures

import "github.com/sgaunet/pr-report/pkg/report"

// GitHubRows returns two normalized GitHub rows of user octocat.
func GitHubRows() []report.Row {
	return []report.Row{
		{
			Project:      "octocat",
			Repository:   "hello-world",
			Title:        "Add greeting & farewell",
			Author:       "hubot",
			CreatedAt:    "2024-03-01 10:30:45",
			URL:          "https://github.com/octocat/hello-world/pull/7",
			ReadyToMerge: report.Yes,
		},
		{
			Project:      "octocat",
			Repository:   "spoon-knife",
			Title:        "Fix typo in README",
			Author:       "monalisa",
			CreatedAt:    "2024-02-28 08:00:00",
			URL:          "https://github.com/octocat/spoon-knife/pull/12",
			ReadyToMerge: report.Blocked,
		},
	}
}

// BitbucketRows returns one normalized Bitbucket row.
func BitbucketRows() []report.Row {
	return []report.Row{
		{
			Project:      "KEY",
			Repository:   "api",
			Title:        "Upgrade <framework> to v2",
			Author:       "Jane Doe",
			CreatedAt:    "2024-03-01 10:30:45",
			URL:          "https://bitbucket.example.com/projects/KEY/repos/api/pull-requests/12",
			ReadyToMerge: report.Unknown,
		},
	}
}
