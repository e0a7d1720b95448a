// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"calstage/internal/config"
	"calstage/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `calstage config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage calstage settings",
		Long: `Manage calstage settings.

Settings are stored in:
  - Linux: ~/.config/calstage/config.json
  - macOS: ~/Library/Application Support/calstage/config.json
  - Windows: %APPDATA%\calstage\config.json

Every value can also be overridden per invocation with CALSTAGE_*
environment variables, e.g. CALSTAGE_WORKING_DIR=/exports.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showSettings(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initSettings(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.SettingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a settings value",
		Long: `Set a settings value and persist it.

Valid keys:
  working_dir         directory holding the exports
  source_codes        comma-separated code list, e.g. DEV,BSE,PRD
  tool.bin            split/join tool executable
  tool.split_command  shell template for split (with tool.join_command)
  tool.join_command   shell template for join (with tool.split_command)
  ui.verbose          true or false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setSettingsValue(cmd, args[0], args[1])
		},
	})

	return cfgCmd
}

func showSettings(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		rendered, renderErr := issue.Get(issue.SettingsLoadFailedId).Render("dark")
		if renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Current settings"))
	fmt.Fprintln(out)

	path, pathErr := config.SettingsPath()
	if pathErr == nil && fileExists(path) {
		fmt.Fprintf(out, "%s: %s\n", CodeStyle.Render("Settings file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CodeStyle.Render("Settings file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", CodeStyle.Render("working_dir"), SuccessStyle.Render(cfg.WorkingDir))

	fmt.Fprintf(out, "%s:\n", CodeStyle.Render("source_codes"))
	if len(cfg.SourceCodes) == 0 {
		fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, code := range cfg.SourceCodes {
			fmt.Fprintf(out, "  - %s\n", SuccessStyle.Render(code))
		}
	}

	fmt.Fprintf(out, "%s:\n", CodeStyle.Render("tool"))
	fmt.Fprintf(out, "  bin: %s\n", SuccessStyle.Render(cfg.Tool.Bin))
	if cfg.UsesShellTool() {
		fmt.Fprintf(out, "  split_command: %s\n", SuccessStyle.Render(cfg.Tool.SplitCommand))
		fmt.Fprintf(out, "  join_command: %s\n", SuccessStyle.Render(cfg.Tool.JoinCommand))
	}

	fmt.Fprintf(out, "%s:\n", CodeStyle.Render("ui"))
	fmt.Fprintf(out, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initSettings(cmd *cobra.Command) error {
	if err := config.CreateDefaultSettings(); err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	path, err := config.SettingsPath()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default settings at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func setSettingsValue(cmd *cobra.Command, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "working_dir":
		cfg.WorkingDir = value

	case "source_codes":
		var codes []string
		for _, c := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				codes = append(codes, trimmed)
			}
		}
		cfg.SourceCodes = codes

	case "tool.bin":
		cfg.Tool.Bin = value

	case "tool.split_command":
		cfg.Tool.SplitCommand = value

	case "tool.join_command":
		cfg.Tool.JoinCommand = value

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown settings key: %s\nValid keys: working_dir, source_codes, tool.bin, tool.split_command, tool.join_command, ui.verbose", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
