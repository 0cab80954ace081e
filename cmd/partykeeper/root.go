package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/partykeeper/internal/buildinfo"
	"github.com/dmitrijs2005/partykeeper/internal/cli"
	"github.com/dmitrijs2005/partykeeper/internal/config"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
)

// errProblemsFound makes verify exit non-zero without repeating its report.
var errProblemsFound = errors.New("problems found")

// appState is what every command gets after config is loaded.
type appState struct {
	cfg *config.Config
	log logging.Logger
}

// newRootCmd builds the command tree. Configuration flags (-c, -d, -s, -l,
// -m) are read from args by the config package, so cobra is told to let
// unknown flags through.
func newRootCmd(args []string) *cobra.Command {
	rt := &appState{}

	loadConfig := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(args)
		if err != nil {
			return err
		}
		rt.cfg = cfg
		rt.log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
		return nil
	}

	whitelist := cobra.FParseErrWhitelist{UnknownFlags: true}

	rootCmd := &cobra.Command{
		Use:   "partykeeper",
		Short: "Roll, save and load adventuring parties",
		Long: `partykeeper keeps named party saves per account.

Without a subcommand it starts the interactive shell. Configuration comes
from defaults, a JSON file (-c), PARTYKEEPER_* environment variables and the
flags -d (data dir), -s (account store), -l (log level), -m (max party size).`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: whitelist,
		SilenceUsage:       true,
		PersistentPreRunE:  loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, err := cli.NewApp(ctx, rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					rt.log.Error(ctx, "close app", "error", err)
				}
			}()
			return app.Run(ctx)
		},
	}

	var user string
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a save scope for missing, corrupt or orphan files",
		Long: `Check that every save listed in a scope's index has a readable file, and
list party files the index does not reference. Without --user the guest
scope is checked. Nothing is modified.`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: whitelist,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := cli.Verify(cmd.Context(), rt.cfg, user, cmd.OutOrStdout(), rt.log)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: %d", errProblemsFound, n)
			}
			return nil
		},
	}
	verifyCmd.Flags().StringVar(&user, "user", "", "account whose saves to check")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(verifyCmd, versionCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(os.Stdin)
	return rootCmd
}
