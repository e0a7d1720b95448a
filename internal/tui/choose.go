// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"github.com/charmbracelet/huh"
)

type (
	// Option is a selectable option with a display title and value.
	Option[T comparable] struct {
		// Title is the display text for the option.
		Title string
		// Value is the underlying value of the option.
		Value T
		// Selected pre-selects the option in multi-select prompts.
		Selected bool
	}

	// ChooseOptions configures a single-select prompt.
	ChooseOptions[T comparable] struct {
		Title       string
		Description string
		Options     []Option[T]
		// Height limits the number of visible options (0 for auto).
		Height int
		Config Config
	}

	// MultiChooseOptions configures a multi-select prompt.
	MultiChooseOptions[T comparable] struct {
		Title       string
		Description string
		Options     []Option[T]
		// Limit is the maximum number of selections (0 for no limit).
		Limit  int
		Height int
		Config Config
	}
)

// Choose prompts the user to select one option from a list. Returns
// ErrCancelled if the prompt was aborted.
func Choose[T comparable](opts ChooseOptions[T]) (T, error) {
	var result T

	huhOpts := make([]huh.Option[T], len(opts.Options))
	for i, opt := range opts.Options {
		huhOpts[i] = huh.NewOption(opt.Title, opt.Value)
	}

	sel := huh.NewSelect[T]().
		Title(opts.Title).
		Description(opts.Description).
		Options(huhOpts...).
		Value(&result)

	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible)

	if err := mapRunErr(form.Run()); err != nil {
		return result, err
	}

	return result, nil
}

// ChooseStrings is a convenience wrapper where option titles and values are
// the same string.
func ChooseStrings(title string, options []string, config Config) (string, error) {
	return Choose(ChooseOptions[string]{
		Title:   title,
		Options: stringOptions(options),
		Config:  config,
	})
}

// MultiChoose prompts the user to select multiple options from a list.
// Returns ErrCancelled if the prompt was aborted.
func MultiChoose[T comparable](opts MultiChooseOptions[T]) ([]T, error) {
	var result []T

	huhOpts := make([]huh.Option[T], len(opts.Options))
	for i, opt := range opts.Options {
		o := huh.NewOption(opt.Title, opt.Value)
		if opt.Selected {
			o = o.Selected(true)
		}
		huhOpts[i] = o
	}

	sel := huh.NewMultiSelect[T]().
		Title(opts.Title).
		Description(opts.Description).
		Options(huhOpts...).
		Value(&result)

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible)

	if err := mapRunErr(form.Run()); err != nil {
		return nil, err
	}

	return result, nil
}

// MultiChooseStrings is a convenience wrapper for selecting multiple strings
// with all options pre-selected, which suits "process these codes?" prompts.
func MultiChooseStrings(title string, options []string, config Config) ([]string, error) {
	opts := make([]Option[string], len(options))
	for i, o := range options {
		opts[i] = Option[string]{Title: o, Value: o, Selected: true}
	}
	return MultiChoose(MultiChooseOptions[string]{
		Title:   title,
		Options: opts,
		Config:  config,
	})
}

// stringOptions builds options where each title equals its value.
func stringOptions(values []string) []Option[string] {
	opts := make([]Option[string], len(values))
	for i, v := range values {
		opts[i] = Option[string]{Title: v, Value: v}
	}
	return opts
}
