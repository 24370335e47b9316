package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sgaunet/pr-report/internal/credentials"
	"github.com/sgaunet/pr-report/internal/timeutil"
	"github.com/sgaunet/pr-report/pkg/config"
	"github.com/sgaunet/pr-report/pkg/platform"
	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/spf13/cobra"
)

func newGitHubCmd() *cobra.Command {
	var user, token, apiURL, webURL, output string

	cmd := &cobra.Command{
		Use:   "github",
		Short: "Collect the open pull requests of a GitHub user's repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			override(&cfg.GitHub.User, user)
			override(&cfg.GitHub.APIURL, apiURL)
			override(&cfg.GitHub.WebURL, webURL)
			override(&cfg.GitHub.Output, output)
			if err := cfg.ValidateGitHub(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			cfg.GitHub.Token, _, err = newResolver(log).Resolve(credentials.Lookup{
				Service:    "GitHub",
				Flag:       token,
				EnvVar:     envGitHubToken,
				KeyringKey: credentials.KeyGitHubToken,
				Prompt:     "GitHub token:",
				Required:   true,
			})
			if err != nil {
				return err
			}

			return collect(cmd.Context(), platform.KindGitHub, cfg, []string{cfg.GitHub.User}, cfg.GitHub.Output)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "GitHub user whose repositories are scanned")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token (default $"+envGitHubToken+", then keyring)")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "GitHub Enterprise API URL")
	cmd.Flags().StringVar(&webURL, "web-url", "", "Base URL of pull request links (default "+config.DefaultGitHubWebURL+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default "+config.DefaultGitHubOutput+")")
	return cmd
}

func newBitbucketCmd() *cobra.Command {
	var url, username, token, output string
	var projects []string

	cmd := &cobra.Command{
		Use:   "bitbucket",
		Short: "Collect the open pull requests of Bitbucket Server projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			override(&cfg.Bitbucket.URL, url)
			override(&cfg.Bitbucket.Username, username)
			override(&cfg.Bitbucket.Output, output)
			if len(projects) > 0 {
				cfg.Bitbucket.Projects = projects
			}
			if err := cfg.ValidateBitbucket(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			cfg.Bitbucket.Token, _, err = newResolver(log).Resolve(credentials.Lookup{
				Service:    "Bitbucket",
				Flag:       token,
				EnvVar:     envBitbucketToken,
				KeyringKey: credentials.KeyBitbucketToken,
				Prompt:     "Bitbucket token or password:",
				Required:   true,
			})
			if err != nil {
				return err
			}

			return collect(cmd.Context(), platform.KindBitbucket, cfg, cfg.Bitbucket.Projects, cfg.Bitbucket.Output)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Bitbucket Server base URL")
	cmd.Flags().StringSliceVarP(&projects, "project", "p", nil, "Project key to scan (repeatable)")
	cmd.Flags().StringVar(&username, "username", "", "Username for basic authentication (bearer token when empty)")
	cmd.Flags().StringVar(&token, "token", "", "Bitbucket token (default $"+envBitbucketToken+", then keyring)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default "+config.DefaultBitbucketOutput+")")
	return cmd
}

func newGitLabCmd() *cobra.Command {
	var url, token, output string
	var groups []string

	cmd := &cobra.Command{
		Use:   "gitlab",
		Short: "Collect the open merge requests of GitLab groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			override(&cfg.GitLab.URL, url)
			override(&cfg.GitLab.Output, output)
			if len(groups) > 0 {
				cfg.GitLab.Groups = groups
			}
			if err := cfg.ValidateGitLab(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			cfg.GitLab.Token, _, err = newResolver(log).Resolve(credentials.Lookup{
				Service:    "GitLab",
				Flag:       token,
				EnvVar:     envGitLabToken,
				KeyringKey: credentials.KeyGitLabToken,
				Prompt:     "GitLab token:",
				Required:   true,
			})
			if err != nil {
				return err
			}

			return collect(cmd.Context(), platform.KindGitLab, cfg, cfg.GitLab.Groups, cfg.GitLab.Output)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "GitLab base URL (default "+config.DefaultGitLabURL+")")
	cmd.Flags().StringSliceVarP(&groups, "group", "g", nil, "Group path to scan, subgroups included (repeatable)")
	cmd.Flags().StringVar(&token, "token", "", "GitLab token (default $"+envGitLabToken+", then keyring)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default "+config.DefaultGitLabOutput+")")
	return cmd
}

// collect scans projects on one platform and writes the rows to output. The
// file is not written when the run stops on an error.
func collect(ctx context.Context, kind platform.Kind, cfg *config.Config, projects []string, output string) error {
	provider, err := platform.NewProvider(kind, cfg, log)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := platform.NewCollector(provider, cfg.Policy(), log).Collect(ctx, projects)
	if err != nil {
		return fmt.Errorf("failed to collect pull requests: %w", err)
	}

	if err := report.WriteFile(output, report.NewRowSet(res.Rows)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("%d open pull request(s) written to %s in %s",
		len(res.Rows), output, timeutil.FormatDuration(time.Since(start)))
	return nil
}
