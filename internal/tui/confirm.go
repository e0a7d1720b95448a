// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"github.com/charmbracelet/huh"
)

// ConfirmOptions configures a yes/no prompt.
type ConfirmOptions struct {
	// Title is the question to display.
	Title string
	// Description provides additional context below the title.
	Description string
	// Affirmative is the text for the affirmative option (default "Yes").
	Affirmative string
	// Negative is the text for the negative option (default "No").
	Negative string
	// Default is the pre-selected answer.
	Default bool
	Config  Config
}

// Confirm prompts the user to confirm an action. Returns ErrCancelled if the
// prompt was aborted.
func Confirm(opts ConfirmOptions) (bool, error) {
	affirmative := opts.Affirmative
	if affirmative == "" {
		affirmative = "Yes"
	}
	negative := opts.Negative
	if negative == "" {
		negative = "No"
	}

	result := opts.Default

	confirm := huh.NewConfirm().
		Title(opts.Title).
		Description(opts.Description).
		Affirmative(affirmative).
		Negative(negative).
		Value(&result)

	form := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible)

	if err := mapRunErr(form.Run()); err != nil {
		return false, err
	}

	return result, nil
}
