// SPDX-License-Identifier: EPL-2.0

// Package tui provides the interactive prompts used by the CLI. It wraps
// charmbracelet/huh so callers deal in plain values, and falls back to huh's
// accessible mode when stdin is not a terminal or ACCESSIBLE is set.
package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Theme selects the huh theme used by prompts.
type Theme string

const (
	// ThemeDefault uses the default huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for prompts.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables accessible mode for screen readers and
	// non-terminal input.
	Accessible bool
}

// DefaultConfig enables accessible mode when stdin is not a terminal or the
// ACCESSIBLE environment variable is set.
func DefaultConfig() Config {
	accessible := !isInputTerminal() || os.Getenv("ACCESSIBLE") != ""
	return Config{
		Theme:      ThemeDefault,
		Accessible: accessible,
	}
}

// isInputTerminal reports whether stdin is attached to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// getHuhTheme maps a Theme name to a huh theme, defaulting to the base
// theme for unknown names.
func getHuhTheme(theme Theme) *huh.Theme {
	switch theme {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeBase16:
		return huh.ThemeBase16()
	case ThemeDefault:
		return huh.ThemeBase()
	}
	return huh.ThemeBase()
}

// mapRunErr converts huh's abort error into ErrCancelled.
func mapRunErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
