// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"calstage/internal/config"
	"calstage/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output.
	verbose bool
	// cfgFile allows specifying a custom settings file.
	cfgFile string

	// settings is the loaded configuration, populated by initRootConfig.
	// Falls back to defaults when loading fails so commands stay usable.
	settings = config.DefaultSettings()

	// rootCmd represents the base command when called without subcommands.
	rootCmd = &cobra.Command{
		Use:   "calstage",
		Short: "Stage and inventory application-object exports",
		Long: TitleStyle.Render("calstage") + SubtitleStyle.Render(" - stage and inventory application-object exports") + `

calstage works on a directory of combined export files named <CODE>.txt,
where CODE is a 3-character source code such as DEV or PRD. It wraps an
external split/join tool to break an export into per-object files for
review and to join staged objects back into a single MRG2<CODE>.txt.

` + SubtitleStyle.Render("Typical session:") + `
  1. Drop the exports into the working directory
  2. calstage prepare       Split every export into its staging tree
  3. Edit or cherry-pick the per-object files under <CODE>/
  4. calstage merge         Join the staged objects into MRG2<CODE>.txt

` + SubtitleStyle.Render("Examples:") + `
  calstage sources          List the exports present in the working directory
  calstage inspect DEV      Show the object inventory of DEV.txt
  calstage prepare DEV BSE  Stage only the named codes
  calstage menu             Interactive code/action picker
  calstage config show      Show current settings`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is the platform config dir)")

	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(newUpgradeCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the settings file and environment variables.
func initRootConfig() {
	if cfgFile != "" {
		config.SetSettingsFileOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Settings problems must be visible even when a fallback exists.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	settings = cfg

	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// carry their own formatting; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
