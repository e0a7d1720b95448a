// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"calstage/internal/catalog"
	"calstage/internal/inventory"
	"calstage/internal/tui"

	"github.com/spf13/cobra"
)

// inspectCmd prints the object inventory of one export.
var inspectCmd = &cobra.Command{
	Use:   "inspect [CODE]",
	Short: "Show the object inventory of an export",
	Long: `Show the object inventory of an export.

The export is scanned for OBJECT header lines and the object ids are
printed per type in compact range notation, e.g. "Table: 18|27..29".
Without a CODE argument an interactive picker lists the available
exports.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		code, err := pickCode(args)
		if err != nil {
			return err
		}

		return runInspect(cmd.OutOrStdout(), code)
	},
}

// pickCode resolves the export to inspect: the argument when given,
// otherwise an interactive choice among the available exports.
func pickCode(args []string) (catalog.SourceCode, error) {
	if len(args) > 0 {
		return catalog.ParseSourceCode(args[0])
	}

	codes, err := settings.Codes()
	if err != nil {
		return "", err
	}
	exports := catalog.ListAvailable(settings.WorkingDir, codes)
	if len(exports) == 0 {
		return "", &ExitError{Code: 1, Err: fmt.Errorf("no exports found in %s", settings.WorkingDir)}
	}

	options := make([]string, len(exports))
	for i, exp := range exports {
		options[i] = string(exp.Code)
	}

	chosen, err := tui.ChooseStrings("Inspect which export?", options, tui.DefaultConfig())
	if err != nil {
		return "", err
	}
	return catalog.SourceCode(chosen), nil
}

// runInspect scans the export for the given code and prints its summary.
func runInspect(out io.Writer, code catalog.SourceCode) error {
	path := catalog.ExportPath(settings.WorkingDir, code)

	inv, err := inventory.ScanFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("Inventory of %s", code))+SubtitleStyle.Render("  "+path))
	if inv.Empty() {
		fmt.Fprintln(out, SubtitleStyle.Render("  (no objects found)"))
		return nil
	}
	for _, line := range inv.Summary() {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}
