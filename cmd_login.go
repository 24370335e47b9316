package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sgaunet/pr-report/internal/credentials"
	"github.com/sgaunet/pr-report/internal/ui"
	"github.com/spf13/cobra"
)

var errUnknownService = errors.New("unknown service")

var loginKeys = map[string]string{
	"github":     credentials.KeyGitHubToken,
	"bitbucket":  credentials.KeyBitbucketToken,
	"gitlab":     credentials.KeyGitLabToken,
	"confluence": credentials.KeyConfluencePassword,
}

func newLoginCmd() *cobra.Command {
	services := slices.Sorted(maps.Keys(loginKeys))

	return &cobra.Command{
		Use:       "login SERVICE",
		Short:     "Store a token or password in the system keyring",
		Long:      "Prompt for the secret of SERVICE (" + strings.Join(services, ", ") + ") and store it in the system keyring.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: services,
		RunE: func(_ *cobra.Command, args []string) error {
			service := strings.ToLower(args[0])
			key, ok := loginKeys[service]
			if !ok {
				return fmt.Errorf("%w: %s", errUnknownService, args[0])
			}

			secret, err := ui.NewPrompter().Password(service + " secret:")
			if err != nil {
				return err
			}
			if err := credentials.NewKeyring().Set(key, secret); err != nil {
				return fmt.Errorf("failed to store %s secret: %w", service, err)
			}
			log.Infof("%s secret stored in keyring %q", service, credentials.ServiceName)
			return nil
		},
	}
}
