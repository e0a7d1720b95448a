// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"calstage/internal/catalog"
	"calstage/internal/tui"

	"github.com/spf13/cobra"
)

// Menu actions, in display order.
const (
	actionInspect = "Inspect inventory"
	actionPrepare = "Prepare staging trees"
	actionMerge   = "Merge staged objects"
	actionQuit    = "Quit"
)

// menuCmd is the interactive loop over the available exports.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive code and action picker",
	Long: `Interactive code and action picker.

Repeatedly choose one or more source codes and an action to run on
them. Prepare asks for confirmation before resetting staging trees.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		for {
			done, err := menuRound(cmd)
			if err != nil {
				if errors.Is(err, tui.ErrCancelled) {
					return nil
				}
				return err
			}
			if done {
				return nil
			}
		}
	},
}

// menuRound runs one iteration of the menu loop. It returns true when the
// user chose to quit.
func menuRound(cmd *cobra.Command) (bool, error) {
	codes, err := settings.Codes()
	if err != nil {
		return false, err
	}
	exports := catalog.ListAvailable(settings.WorkingDir, codes)
	if len(exports) == 0 {
		return false, &ExitError{Code: 1, Err: fmt.Errorf("no exports found in %s", settings.WorkingDir)}
	}

	action, err := tui.ChooseStrings("What do you want to do?",
		[]string{actionInspect, actionPrepare, actionMerge, actionQuit},
		tui.DefaultConfig())
	if err != nil {
		return false, err
	}
	if action == actionQuit {
		return true, nil
	}

	options := make([]string, len(exports))
	for i, exp := range exports {
		options[i] = string(exp.Code)
	}

	out := cmd.OutOrStdout()

	if action == actionInspect {
		chosen, chooseErr := tui.ChooseStrings("Inspect which export?", options, tui.DefaultConfig())
		if chooseErr != nil {
			return false, chooseErr
		}
		return false, runInspect(out, catalog.SourceCode(chosen))
	}

	chosen, err := tui.MultiChooseStrings("Which codes?", options, tui.DefaultConfig())
	if err != nil {
		return false, err
	}
	if len(chosen) == 0 {
		return false, nil
	}

	selected := make([]catalog.SourceCode, len(chosen))
	for i, c := range chosen {
		selected[i] = catalog.SourceCode(c)
	}

	switch action {
	case actionPrepare:
		confirmed, confirmErr := tui.Confirm(tui.ConfirmOptions{
			Title:       fmt.Sprintf("Reset the staging trees for %d code(s)?", len(selected)),
			Description: "Existing content under <CODE>/ and MRG2<CODE>/ will be deleted.",
			Default:     false,
			Config:      tui.DefaultConfig(),
		})
		if confirmErr != nil {
			return false, confirmErr
		}
		if !confirmed {
			return false, nil
		}
		rep, prepErr := newPipeline().Prepare(cmd.Context(), selected)
		if prepErr != nil {
			return false, prepErr
		}
		printReport(out, rep)

	case actionMerge:
		rep, mergeErr := newPipeline().Merge(cmd.Context(), selected)
		if mergeErr != nil {
			return false, mergeErr
		}
		printReport(out, rep)
	}

	return false, nil
}
