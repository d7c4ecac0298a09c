package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/threefoldfoundation/tft/tools/evmtools/config"
)

// Version of the tools, overwritten at build time with -ldflags "-X".
var Version = "development"

// errReported is returned by commands that already printed their diagnostic.
var errReported = errors.New("reported")

// newCommand adds the shared flags and the logger setup to a tool command.
func newCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Version = Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cfg.ConfigureLogger(cmd.ErrOrStderr())
		return nil
	}
	return cmd
}

// Execute runs a tool command, printing the error to stdout and exiting with status 1 on failure.
func Execute(cmd *cobra.Command) {
	if code := run(cmd); code != 0 {
		os.Exit(code)
	}
}

// run executes cmd and returns the process exit code.
func run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.OutOrStdout(), err)
		}
		return 1
	}
	return 0
}
