// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestGetHuhTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeBase16, Theme("bogus")} {
		if got := getHuhTheme(theme); got == nil {
			t.Errorf("getHuhTheme(%q) returned nil", theme)
		}
	}
}

func TestMapRunErr(t *testing.T) {
	t.Parallel()

	if err := mapRunErr(nil); err != nil {
		t.Errorf("mapRunErr(nil) = %v", err)
	}

	if err := mapRunErr(huh.ErrUserAborted); !errors.Is(err, ErrCancelled) {
		t.Errorf("aborted prompt: got %v, want ErrCancelled", err)
	}

	wrapped := fmt.Errorf("form: %w", huh.ErrUserAborted)
	if err := mapRunErr(wrapped); !errors.Is(err, ErrCancelled) {
		t.Errorf("wrapped abort: got %v, want ErrCancelled", err)
	}

	other := errors.New("terminal unavailable")
	if err := mapRunErr(other); !errors.Is(err, other) {
		t.Errorf("unrelated error must pass through, got %v", err)
	}
}

func TestStringOptions(t *testing.T) {
	t.Parallel()

	got := stringOptions([]string{"DEV", "BSE"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, want := range []string{"DEV", "BSE"} {
		if got[i].Title != want || got[i].Value != want {
			t.Errorf("option[%d] = %+v, want title and value %q", i, got[i], want)
		}
	}
}
