package main

import (
	"fmt"

	"github.com/sgaunet/pr-report/pkg/render"
	"github.com/sgaunet/pr-report/pkg/report"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE...",
		Short: "Print the merged report files as a table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := report.ReadFiles(args...)
			if err != nil {
				return fmt.Errorf("failed to read reports: %w", err)
			}
			if err := render.Terminal(cmd.OutOrStdout(), set); err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			log.Debug(fmt.Sprintf("%d pull request(s) from %d file(s)", set.Len(), len(args)))
			return nil
		},
	}
}
