// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSourceCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    SourceCode
		wantErr bool
	}{
		{name: "upper case kept", raw: "DEV", want: "DEV"},
		{name: "lower case normalized", raw: "dev", want: "DEV"},
		{name: "mixed case normalized", raw: "DlY", want: "DLY"},
		{name: "digits allowed", raw: "R21", want: "R21"},
		{name: "surrounding whitespace trimmed", raw: " bse ", want: "BSE"},
		{name: "too short", raw: "DE", wantErr: true},
		{name: "too long", raw: "DEVL", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "punctuation rejected", raw: "D-V", wantErr: true},
		{name: "space inside rejected", raw: "D V", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSourceCode(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSourceCode(%q) should fail", tt.raw)
				}
				if !errors.Is(err, ErrInvalidSourceCode) {
					t.Errorf("error should wrap ErrInvalidSourceCode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceCode(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseSourceCode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSourceCodes_FirstInvalidAborts(t *testing.T) {
	_, err := ParseSourceCodes([]string{"DEV", "toolong", "PRD"})
	if err == nil {
		t.Fatal("expected error for invalid entry")
	}

	var ice *InvalidSourceCodeError
	if !errors.As(err, &ice) {
		t.Fatalf("expected InvalidSourceCodeError, got %T", err)
	}
	if ice.Value != "toolong" {
		t.Errorf("error names %q, want %q", ice.Value, "toolong")
	}
}

func TestListAvailable_OrderAndFiltering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"DLY.txt", "BSE.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("OBJECT Table 18\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	codes := []SourceCode{"DLY", "PRD", "BSE"}
	available := ListAvailable(dir, codes)

	if len(available) != 2 {
		t.Fatalf("ListAvailable() = %v, want 2 entries", available)
	}
	if available[0].Code != "DLY" || available[1].Code != "BSE" {
		t.Errorf("order = [%s, %s], want [DLY, BSE]", available[0].Code, available[1].Code)
	}
	if available[0].Path != filepath.Join(dir, "DLY.txt") {
		t.Errorf("path = %q, want %q", available[0].Path, filepath.Join(dir, "DLY.txt"))
	}
}

func TestListAvailable_EmptyCases(t *testing.T) {
	dir := t.TempDir()

	if got := ListAvailable(dir, []SourceCode{"DEV", "PRD"}); len(got) != 0 {
		t.Errorf("empty working dir: got %v, want empty", got)
	}
	if got := ListAvailable(dir, nil); len(got) != 0 {
		t.Errorf("no configured codes: got %v, want empty", got)
	}
}

func TestListAvailable_DirectoryDoesNotCount(t *testing.T) {
	dir := t.TempDir()
	// A directory named like an export must not be listed.
	if err := os.MkdirAll(filepath.Join(dir, "DEV.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got := ListAvailable(dir, []SourceCode{"DEV"}); len(got) != 0 {
		t.Errorf("directory masquerading as export listed: %v", got)
	}
}
