// Argsbar is an interactive argument bar for the terminal.
//
// It loads a list of typed parameters from a YAML file and lets the user
// fill them in one character at a time. Each field only accepts characters
// that keep its text a valid prefix of its encoding (string, integer,
// numeric or boolean). On submit the collected values are printed as text
// or JSON for use by scripts.
//
// Usage:
//
//	argsbar [command] [flags]
//
// Running without arguments opens the bar.
// See 'argsbar --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/argsbar/internal/logging"
	"github.com/muurk/argsbar/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errCancelled) && !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "argsbar",
	Short: "Interactive typed argument bar",
	Long: `An interactive bar for entering typed arguments.

Fields are defined in a parameter file. Each field only accepts text that
is valid for its encoding, so integer fields take digits and boolean
fields take "true" or "false".

If no command is specified, the bar opens with the configured parameters.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runBar,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "argsbar %s (commit: %s, %s)\n", version.Version, version.Commit, version.Platform())
	},
}
