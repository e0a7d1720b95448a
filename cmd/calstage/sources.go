// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"calstage/internal/catalog"
	"calstage/internal/issue"

	"github.com/spf13/cobra"
)

// sourcesCmd lists the exports present in the working directory.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the export files present in the working directory",
	Long: `List the export files present in the working directory.

Only configured source codes are considered; a code is listed when its
<CODE>.txt export exists. The order follows the configured code list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		codes, err := settings.Codes()
		if err != nil {
			return err
		}

		exports := catalog.ListAvailable(settings.WorkingDir, codes)
		if len(exports) == 0 {
			rendered, renderErr := issue.Get(issue.NoExportsFoundId).Render("dark")
			if renderErr == nil {
				fmt.Fprint(os.Stderr, rendered)
			}
			return &ExitError{Code: 1, Err: fmt.Errorf("no exports found in %s", settings.WorkingDir)}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Available exports"))
		for _, exp := range exports {
			fmt.Fprintf(out, "  %s  %s\n", CodeStyle.Render(string(exp.Code)), SubtitleStyle.Render(exp.Path))
		}
		return nil
	},
}
