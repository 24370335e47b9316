// Package main provides the entry point for the pr-report CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/pr-report/internal/credentials"
	"github.com/sgaunet/pr-report/internal/logger"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/config"
	"github.com/spf13/cobra"
)

// Environment variables holding secrets.
const (
	envGitHubToken        = "GITHUB_TOKEN"
	envBitbucketToken     = "BITBUCKET_TOKEN"
	envGitLabToken        = "GITLAB_TOKEN"
	envConfluencePassword = "CONFLUENCE_PASSWORD"
)

var (
	logLevel   string
	configPath string
	log        = logger.NoLogger()
)

var rootCmd = &cobra.Command{
	Use:   "pr-report",
	Short: "Report open pull requests across GitHub, Bitbucket and GitLab",
	Long: `pr-report collects the open pull requests of GitHub users, Bitbucket Server
projects and GitLab groups into CSV files, then merges them into a single
table published to a Confluence page.

  pr-report github --user octocat
  pr-report bitbucket --url https://bitbucket.example.com --project KEY
  pr-report publish gh-pr.csv bb-pr.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log = logger.NewLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Configuration file (default ~/.config/pr-report/config.yml)")

	rootCmd.AddCommand(
		newGitHubCmd(),
		newBitbucketCmd(),
		newGitLabCmd(),
		newPublishCmd(),
		newPreviewCmd(),
		newLoginCmd(),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", security.SanitizeError(err))
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded successfully")
	return cfg, nil
}

func newResolver(l *bullets.Logger) *credentials.Resolver {
	r := credentials.NewResolver()
	r.SetLogger(l)
	return r
}

// override replaces *dst with v when v is set.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
