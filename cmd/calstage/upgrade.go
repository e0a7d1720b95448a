// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"calstage/internal/selfupdate"

	"github.com/spf13/cobra"
)

// upgradeParams bundles the dependencies for the upgrade check so the core
// logic is testable without a real Cobra command or live API calls.
type upgradeParams struct {
	stdout  io.Writer
	checker *selfupdate.Checker
	target  string // target version (empty = latest)
}

// newUpgradeCommand creates the `calstage upgrade` command. The command only
// reports whether a newer release exists; installing it is left to the
// package manager or a manual download.
func newUpgradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [version]",
		Short: "Check for a newer calstage release",
		Long: `Check for a newer calstage release.

Compares the running version against the latest stable GitHub release
(or a specific version when given) and reports how to obtain it. If
calstage was installed via Homebrew or go install, the matching
package-manager command is suggested.`,
		Example: `  # Check against the latest stable release
  calstage upgrade

  # Check against a specific version
  calstage upgrade v1.2.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			var target string
			if len(args) > 0 {
				target = args[0]
			}

			// A token raises the API rate limit considerably.
			var clientOpts []selfupdate.ClientOption
			if token := os.Getenv("GITHUB_TOKEN"); token != "" {
				clientOpts = append(clientOpts, selfupdate.WithToken(token))
			}
			clientOpts = append(clientOpts, selfupdate.WithUserAgent("calstage/"+Version))

			client := selfupdate.NewGitHubClient(clientOpts...)
			checker := selfupdate.NewChecker(Version, selfupdate.WithGitHubClient(client))

			p := upgradeParams{
				stdout:  cmd.OutOrStdout(),
				checker: checker,
				target:  target,
			}

			if err := runUpgradeCheck(cmd.Context(), p); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatUpgradeError(err))
				return &ExitError{Code: classifyUpgradeExitCode(err), Err: err}
			}

			return nil
		},
	}

	return cmd
}

// runUpgradeCheck is the core logic, separated from Cobra for testability.
func runUpgradeCheck(ctx context.Context, p upgradeParams) error {
	check, err := p.checker.Check(ctx, p.target)
	if err != nil {
		return fmt.Errorf("checking for upgrade: %w", err)
	}

	// Managed installs get the pre-formatted package-manager guidance.
	if check.InstallMethod == selfupdate.InstallMethodHomebrew ||
		check.InstallMethod == selfupdate.InstallMethodGoInstall {
		fmt.Fprintln(p.stdout, check.Message)
		return nil
	}

	fmt.Fprintf(p.stdout, "Current version: %s\n", check.CurrentVersion)
	if check.LatestVersion != "" {
		fmt.Fprintf(p.stdout, "Latest version:  %s\n", check.LatestVersion)
	}

	if !check.UpgradeAvailable {
		fmt.Fprintf(p.stdout, "\n%s\n", check.Message)
		return nil
	}

	fmt.Fprintf(p.stdout, "\nAn upgrade is available: %s → %s\n", check.CurrentVersion, check.LatestVersion)
	if check.TargetRelease != nil && check.TargetRelease.HTMLURL != "" {
		fmt.Fprintf(p.stdout, "Download it from %s\n", check.TargetRelease.HTMLURL)
	}
	return nil
}

// classifyUpgradeExitCode maps a check error to the process exit code.
// Missing releases and bad versions are user-correctable (1); everything
// else is transient (2).
func classifyUpgradeExitCode(err error) int {
	switch {
	case errors.Is(err, selfupdate.ErrReleaseNotFound):
		return 1
	case errors.Is(err, selfupdate.ErrInvalidVersion):
		return 1
	default:
		return 2
	}
}

// formatUpgradeError produces a user-friendly message with remediation
// guidance for the specific failure.
func formatUpgradeError(err error) string {
	var rateLimitErr *selfupdate.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Sprintf("%s\n\nTo increase your rate limit, set a GitHub token:\n  export GITHUB_TOKEN=ghp_...\nThen retry: calstage upgrade",
			rateLimitErr.Error())
	}

	if errors.Is(err, selfupdate.ErrReleaseNotFound) {
		return fmt.Sprintf("%s\n\nCheck the version tag and the project's releases page.", err.Error())
	}

	return fmt.Sprintf("%s\n\nCheck your network connection and try again.\nIf behind a firewall, set GITHUB_TOKEN for authenticated access.", err.Error())
}
