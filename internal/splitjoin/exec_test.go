// SPDX-License-Identifier: MPL-2.0

package splitjoin

import (
	"errors"
	"testing"
)

func TestExecTool_AvailableEmptyBin(t *testing.T) {
	tool := NewExecTool("")
	err := tool.Available()
	if err == nil {
		t.Fatal("expected error for empty binary")
	}
	if !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("error should wrap ErrToolUnavailable, got %v", err)
	}
}

func TestExecTool_AvailableMissingBin(t *testing.T) {
	tool := NewExecTool("calstage-no-such-tool-xyzzy")
	err := tool.Available()
	if err == nil {
		t.Fatal("expected error for unresolvable binary")
	}
	if !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("error should wrap ErrToolUnavailable, got %v", err)
	}
}

func TestExecTool_AvailableResolvable(t *testing.T) {
	// Any binary reliably on PATH works for the probe; "go" is guaranteed in
	// this repo's test environment, but fall back to a shell if not present.
	for _, bin := range []string{"sh", "go", "cmd"} {
		tool := NewExecTool(bin)
		if err := tool.Available(); err == nil {
			return
		}
	}
	t.Skip("no known binary resolvable on PATH")
}
