// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"calstage/internal/issue"
	"calstage/internal/splitjoin"
	"calstage/internal/tui"

	"github.com/spf13/cobra"
)

// prepareCmd runs the Prepare phase: reset the staging directories, split
// each export and seed the merge area with a copy of the split result.
var prepareCmd = &cobra.Command{
	Use:   "prepare [CODE...]",
	Short: "Split exports into per-object staging trees",
	Long: `Split exports into per-object staging trees.

For every requested code with an existing <CODE>.txt export, prepare
deletes and recreates the <CODE>/ and MRG2<CODE>/ directories, splits
the export into per-object files under <CODE>/ and seeds MRG2<CODE>/
with a copy. Codes whose export is missing are skipped. A failure on
one code never aborts the others.

Existing staging content for the requested codes is LOST.`,
	Example: `  # Stage all configured codes
  calstage prepare

  # Stage only DEV and BSE
  calstage prepare DEV BSE

  # Skip the confirmation prompt
  calstage prepare --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		codes, err := resolveCodes(args)
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes") //nolint:errcheck // flag is registered below
		if !yes {
			confirmed, confirmErr := tui.Confirm(tui.ConfirmOptions{
				Title:       fmt.Sprintf("Reset the staging trees for %d code(s)?", len(codes)),
				Description: "Existing content under <CODE>/ and MRG2<CODE>/ will be deleted.",
				Default:     false,
				Config:      tui.DefaultConfig(),
			})
			if confirmErr != nil {
				if errors.Is(confirmErr, tui.ErrCancelled) {
					return nil
				}
				return confirmErr
			}
			if !confirmed {
				return nil
			}
		}

		rep, err := newPipeline().Prepare(cmd.Context(), codes)
		if err != nil {
			if errors.Is(err, splitjoin.ErrToolUnavailable) {
				rendered, renderErr := issue.Get(issue.ToolNotFoundId).Render("dark")
				if renderErr == nil {
					fmt.Fprint(os.Stderr, rendered)
				}
			}
			return err
		}

		printReport(cmd.OutOrStdout(), rep)
		if exitErr := reportExitError(rep); exitErr != nil {
			return exitErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Prepare complete."))
		return nil
	},
}

func init() {
	prepareCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
