// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		ToolNotFoundId,
		NoExportsFoundId,
		ExportReadFailedId,
		SettingsLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if ToolNotFoundId != 1 {
		t.Errorf("ToolNotFoundId = %d, want 1", ToolNotFoundId)
	}
}

func TestGet_KnownIssues(t *testing.T) {
	for _, id := range []Id{ToolNotFoundId, NoExportsFoundId, ExportReadFailedId, SettingsLoadFailedId} {
		issue := Get(id)
		if issue == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if issue.Id() != id {
			t.Errorf("issue.Id() = %d, want %d", issue.Id(), id)
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty markdown message", id)
		}
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(ToolNotFoundId)
	if issue == nil {
		t.Fatal("Get(ToolNotFoundId) returned nil")
	}

	if !strings.Contains(string(issue.MarkdownMsg()), "Split/join tool not found") {
		t.Error("MarkdownMsg() should contain 'Split/join tool not found'")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var rendered string
	render = func(in, stylePath string) (string, error) {
		rendered = in
		return in, nil
	}

	issue := Get(NoExportsFoundId)
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if out == "" {
		t.Error("Render() returned empty string")
	}
	if !strings.Contains(rendered, "No exports found") {
		t.Error("rendered markdown should contain the issue title")
	}
}

func TestValues(t *testing.T) {
	values := Values()
	if len(values) != 4 {
		t.Errorf("Values() returned %d issues, want 4", len(values))
	}
}
