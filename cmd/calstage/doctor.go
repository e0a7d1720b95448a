// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"calstage/internal/catalog"
	"calstage/internal/config"
	"calstage/internal/platform"

	"github.com/spf13/cobra"
)

// doctorCmd diagnoses the environment: settings, working directory, exports
// and the split/join tool.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment",
	Long: `Diagnose the environment.

Checks that the settings are loadable, the working directory exists,
exports are present and the split/join tool is usable, printing a
remedy for anything that fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("calstage doctor"))
		fmt.Fprintln(out)

		healthy := checkSettings(out)
		healthy = checkWorkingDir(out) && healthy
		healthy = checkTool(out) && healthy

		fmt.Fprintln(out)
		if !healthy {
			fmt.Fprintln(out, WarningStyle.Render("Some checks failed; see above."))
			return &ExitError{Code: 1, Err: fmt.Errorf("environment checks failed")}
		}
		fmt.Fprintln(out, SuccessStyle.Render("All checks passed."))
		return nil
	},
}

func checkSettings(out io.Writer) bool {
	path, err := config.SettingsPath()
	if err != nil {
		printCheck(out, false, "settings path: %v", err)
		return false
	}

	if _, err := os.Stat(path); err != nil {
		printCheck(out, true, "settings: using defaults (%s not present)", path)
	} else {
		printCheck(out, true, "settings: %s", path)
	}

	if _, err := config.Load(); err != nil {
		printCheck(out, false, "settings load: %v", err)
		return false
	}
	return true
}

func checkWorkingDir(out io.Writer) bool {
	info, err := os.Stat(settings.WorkingDir)
	if err != nil || !info.IsDir() {
		printCheck(out, false, "working directory %s does not exist", settings.WorkingDir)
		return false
	}
	printCheck(out, true, "working directory: %s", settings.WorkingDir)

	codes, err := settings.Codes()
	if err != nil {
		printCheck(out, false, "source codes: %v", err)
		return false
	}
	exports := catalog.ListAvailable(settings.WorkingDir, codes)
	if len(codes) == 0 {
		printCheck(out, true, "no source codes configured; commands need explicit CODE arguments")
	} else {
		printCheck(out, len(exports) > 0, "exports present: %d of %d configured codes", len(exports), len(codes))
	}
	return true
}

func checkTool(out io.Writer) bool {
	tool := selectTool()
	if err := tool.Available(); err != nil {
		printCheck(out, false, "split/join tool: %v", err)
		// An absolute bin whose directory is missing from PATH is the
		// most common misconfiguration; suggest the export line.
		if bin := settings.Tool.Bin; !settings.UsesShellTool() && filepath.IsAbs(bin) {
			dir := filepath.Dir(bin)
			if !platform.OnPath(dir) {
				fmt.Fprintf(out, "      %s\n", SubtitleStyle.Render(platform.PathExportHint(dir)))
			}
		}
		return false
	}

	if settings.UsesShellTool() {
		printCheck(out, true, "split/join tool: shell command templates")
	} else {
		printCheck(out, true, "split/join tool: %s", settings.Tool.Bin)
	}
	return true
}

// printCheck writes one check line with a pass or fail marker.
func printCheck(out io.Writer, ok bool, format string, args ...any) {
	marker := SuccessStyle.Render("✓")
	if !ok {
		marker = ErrorStyle.Render("✗")
	}
	fmt.Fprintf(out, "  %s %s\n", marker, fmt.Sprintf(format, args...))
}
