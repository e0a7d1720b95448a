// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"calstage/internal/issue"
	"calstage/internal/splitjoin"

	"github.com/spf13/cobra"
)

// mergeCmd runs the Merge phase: join each merge area back into a single
// MRG2<CODE>.txt export.
var mergeCmd = &cobra.Command{
	Use:   "merge [CODE...]",
	Short: "Join staged objects into MRG2<CODE>.txt exports",
	Long: `Join staged objects into MRG2<CODE>.txt exports.

For every requested code with an existing MRG2<CODE>/ directory, merge
deletes any previous MRG2<CODE>.txt output and joins the .txt files
directly inside the directory (subdirectories are not descended into)
into a fresh one. Codes without a merge directory are skipped. A
failure on one code never aborts the others.`,
	Example: `  # Merge all configured codes
  calstage merge

  # Merge only DEV
  calstage merge DEV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		codes, err := resolveCodes(args)
		if err != nil {
			return err
		}

		rep, err := newPipeline().Merge(cmd.Context(), codes)
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
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Merge complete."))
		return nil
	},
}
