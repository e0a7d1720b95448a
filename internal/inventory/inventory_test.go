// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calstage/internal/issue"
)

const sampleExport = `OBJECT Table 18
{
  OBJECT-PROPERTIES
  {
    Date=29-08-26;
  }
}
OBJECT Page 30
{
  CaptionML=ENU=Item Card;
}
OBJECT Table 27
OBJECT Table 28
OBJECT Table 29
OBJECT Codeunit 80
`

func TestScan_HeaderRecognition(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  *ObjectRecord
		match bool
	}{
		{name: "plain header", line: "OBJECT Table 18", want: &ObjectRecord{Type: "Table", Id: 18}, match: true},
		{name: "leading whitespace", line: "  OBJECT Page 30", want: &ObjectRecord{Type: "Page", Id: 30}, match: true},
		{name: "trailing text after boundary", line: "OBJECT Codeunit 80 Sales-Post", want: &ObjectRecord{Type: "Codeunit", Id: 80}, match: true},
		{name: "lower-case literal does not match", line: "  object table 18", match: false},
		{name: "token boundary enforced", line: "OBJECTX Table 18", match: false},
		{name: "non-digit id does not match", line: "OBJECT Table x8", match: false},
		{name: "missing id does not match", line: "OBJECT Table", match: false},
		{name: "body text ignored", line: "    SourceExpr=Description;", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Scan(strings.NewReader(tt.line))
			if err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if !tt.match {
				if !inv.Empty() {
					t.Errorf("line %q should not match, got %v", tt.line, inv)
				}
				return
			}
			ids := inv[tt.want.Type]
			if len(ids) != 1 || ids[0] != tt.want.Id {
				t.Errorf("line %q: got %v, want (%s, %d)", tt.line, inv, tt.want.Type, tt.want.Id)
			}
		})
	}
}

func TestScan_GroupsByType(t *testing.T) {
	inv, err := Scan(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(inv["Table"]) != 4 {
		t.Errorf("Table ids = %v, want 4 entries", inv["Table"])
	}
	if len(inv["Page"]) != 1 || inv["Page"][0] != 30 {
		t.Errorf("Page ids = %v, want [30]", inv["Page"])
	}
	if len(inv["Codeunit"]) != 1 || inv["Codeunit"][0] != 80 {
		t.Errorf("Codeunit ids = %v, want [80]", inv["Codeunit"])
	}
}

func TestSummary_SortedTypesAndRanges(t *testing.T) {
	inv, err := Scan(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	lines := inv.Summary()
	want := []string{
		"Codeunit: 80",
		"Page: 30",
		"Table: 18|27..29",
	}
	if len(lines) != len(want) {
		t.Fatalf("Summary() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Summary()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSummary_DuplicateIdsPreserved(t *testing.T) {
	inv, err := Scan(strings.NewReader("OBJECT Table 18\nOBJECT Table 18\n"))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	lines := inv.Summary()
	if len(lines) != 1 || lines[0] != "Table: 18|18" {
		t.Errorf("Summary() = %v, want [Table: 18|18]", lines)
	}
}

func TestScan_NoHeadersIsEmptyNotError(t *testing.T) {
	inv, err := Scan(strings.NewReader("just some text\nno headers here\n"))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !inv.Empty() {
		t.Errorf("expected empty inventory, got %v", inv)
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DEV.txt")
	if err := os.WriteFile(path, []byte(sampleExport), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}

	inv, err := ScanFile(path)
	if err != nil {
		t.Fatalf("ScanFile() error: %v", err)
	}
	if inv.Empty() {
		t.Error("expected non-empty inventory")
	}
}

func TestScanFile_MissingFile(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "PRD.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T", err)
	}
	if !strings.Contains(ae.Resource, "PRD.txt") {
		t.Errorf("error should name the path, got %q", ae.Resource)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected os.ErrNotExist in the chain")
	}
}
