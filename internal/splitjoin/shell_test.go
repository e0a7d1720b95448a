// SPDX-License-Identifier: MPL-2.0

package splitjoin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShellTool_AvailableRequiresBothTemplates(t *testing.T) {
	tests := []struct {
		name  string
		split string
		join  string
		ok    bool
	}{
		{name: "both set", split: "true", join: "true", ok: true},
		{name: "missing split", split: "", join: "true", ok: false},
		{name: "missing join", split: "true", join: "", ok: false},
		{name: "whitespace only", split: "   ", join: "true", ok: false},
		{name: "split syntax error", split: "if then fi", join: "true", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewShellTool(tt.split, tt.join)
			err := tool.Available()
			if tt.ok {
				if err != nil {
					t.Errorf("Available() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrToolUnavailable) {
				t.Errorf("error should wrap ErrToolUnavailable, got %v", err)
			}
		})
	}
}

func TestShellTool_SplitBindsEnvironment(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "DEV.txt")
	dst := filepath.Join(dir, "DEV")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// The template only uses interpreter builtins (printf, redirection), so
	// it runs without any external binary.
	tool := NewShellTool(
		`printf '%s -> %s\n' "$CALSTAGE_SOURCE" "$CALSTAGE_DESTINATION" > "$CALSTAGE_DESTINATION/out.txt"`,
		"true",
	)

	if err := tool.Split(context.Background(), src, dst); err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "out.txt"))
	if err != nil {
		t.Fatalf("read split output: %v", err)
	}
	if !strings.Contains(string(data), src) || !strings.Contains(string(data), dst) {
		t.Errorf("template did not see the bound env vars: %q", data)
	}
}

func TestShellTool_JoinWritesDestination(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "MRG2DEV.txt")

	tool := NewShellTool(
		"true",
		`printf 'joined %s\n' "$CALSTAGE_SOURCE" > "$CALSTAGE_DESTINATION"`,
	)

	glob := filepath.Join(dir, "MRG2DEV", "*.txt")
	if err := tool.Join(context.Background(), glob, dst); err != nil {
		t.Fatalf("Join() error: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read join output: %v", err)
	}
	if !strings.Contains(string(data), glob) {
		t.Errorf("join output missing source glob: %q", data)
	}
}

func TestShellTool_FailingCommandSurfacesError(t *testing.T) {
	tool := NewShellTool("false", "true")
	if err := tool.Split(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error from failing split command")
	}
}
