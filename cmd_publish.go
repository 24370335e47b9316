package main

import (
	"errors"
	"fmt"

	"github.com/sgaunet/pr-report/internal/credentials"
	"github.com/sgaunet/pr-report/internal/security"
	"github.com/sgaunet/pr-report/pkg/confluence"
	"github.com/sgaunet/pr-report/pkg/publish"
	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/spf13/cobra"
)

var errPublishAborted = errors.New("publish aborted")

func newPublishCmd() *cobra.Command {
	var url, space, title, parentID, username, password string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "publish FILE...",
		Short: "Merge report files and publish them as a Confluence page",
		Long: `Merge the given CSV reports, in argument order, into one HTML table and
create or update the Confluence page identified by space and title.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			override(&cfg.Confluence.URL, url)
			override(&cfg.Confluence.Space, space)
			override(&cfg.Confluence.Title, title)
			override(&cfg.Confluence.ParentID, parentID)
			override(&cfg.Confluence.Username, username)
			if err := cfg.ValidateConfluence(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			sets := make([]report.RowSet, 0, len(args))
			for _, path := range args {
				set, err := report.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read report: %w", err)
				}
				log.Debug(fmt.Sprintf("%s: %d pull request(s)", path, set.Len()))
				sets = append(sets, set)
			}

			secret, _, err := newResolver(log).Resolve(credentials.Lookup{
				Service:    "Confluence",
				Flag:       password,
				EnvVar:     envConfluencePassword,
				KeyringKey: credentials.KeyConfluencePassword,
				Prompt:     "Confluence password for " + cfg.Confluence.Username + ":",
				Required:   true,
			})
			if err != nil {
				return err
			}
			cfg.Confluence.Password = secret

			creds := security.Credentials{
				Username: cfg.Confluence.Username,
				Secret:   cfg.Confluence.Password,
			}
			security.DebugAuth(log, "Confluence", map[string]string{"method": creds.Method()})
			client, err := confluence.NewClient(cfg.Confluence.URL, creds)
			if err != nil {
				return fmt.Errorf("failed to create Confluence client: %w", err)
			}
			client.SetLogger(log)

			coordinator := publish.NewCoordinator(client)
			coordinator.SetLogger(log)

			out, err := coordinator.PublishReport(cmd.Context(), publish.Request{
				Space:    cfg.Confluence.Space,
				Title:    cfg.Confluence.Title,
				ParentID: cfg.Confluence.ParentID,
				DryRun:   dryRun,
			}, sets...)
			if err != nil {
				return fmt.Errorf("failed to publish page: %w", err)
			}
			return reportOutcome(cfg.Confluence.Title, out)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Confluence base URL")
	cmd.Flags().StringVar(&space, "space", "", "Space key of the page")
	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringVar(&parentID, "parent", "", "ID of the parent page")
	cmd.Flags().StringVar(&username, "username", "", "Confluence username (bearer token when empty)")
	cmd.Flags().StringVar(&password, "password", "", "Confluence password or token (default $"+envConfluencePassword+", then keyring)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Look the page up and report what would be done without writing")
	return cmd
}

func reportOutcome(title string, out *publish.Outcome) error {
	switch {
	case out.Action == publish.ActionAborted:
		return fmt.Errorf("%w: %s", errPublishAborted, out.Warning)
	case out.DryRun:
		log.Infof("Dry run: page %q would be %s (version %d)", title, out.Action, out.Version)
	default:
		log.Infof("Page %q %s (id %s, version %d, status %d)", title, out.Action, out.PageID, out.Version, out.StatusCode)
	}
	return nil
}
