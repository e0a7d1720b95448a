// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"calstage/internal/catalog"
	"calstage/internal/watch"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// watchCmd re-inventories exports whenever they change on disk.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-inventory exports when they change",
	Long: `Re-inventory exports when they change.

Watches the working directory for changes to top-level .txt files and
prints a fresh object inventory for each changed export. Bursts of
writes are coalesced; merge outputs (MRG2*) and editor temp files are
ignored. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		debounce, _ := cmd.Flags().GetDuration("debounce") //nolint:errcheck // flag is registered below

		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		out := cmd.OutOrStdout()

		w, err := watch.New(watch.Config{
			BaseDir:  settings.WorkingDir,
			Patterns: []string{"*" + catalog.ExportExt},
			Debounce: debounce,
			Stdout:   out,
			Stderr:   cmd.ErrOrStderr(),
			OnChange: func(_ context.Context, changed []string) error {
				for _, name := range changed {
					code, parseErr := catalog.ParseSourceCode(codeFromFileName(name))
					if parseErr != nil {
						logger.Debug("ignoring non-export change", "file", name)
						continue
					}
					logger.Info("export changed", "code", code)
					if inspectErr := runInspect(out, code); inspectErr != nil {
						logger.Warn("inventory failed", "code", code, "error", inspectErr)
					}
				}
				return nil
			},
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger.Info("watching for export changes", "dir", settings.WorkingDir)
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "quiet period before re-inventory")
}

// codeFromFileName strips the export extension from a file name, leaving the
// source code candidate.
func codeFromFileName(name string) string {
	if len(name) <= len(catalog.ExportExt) {
		return name
	}
	return name[:len(name)-len(catalog.ExportExt)]
}
