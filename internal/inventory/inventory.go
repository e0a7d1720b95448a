// SPDX-License-Identifier: MPL-2.0

// Package inventory parses application-object export files into a per-type
// listing of object identifiers and renders the identifiers in compact range
// notation.
//
// An export is a single combined text file produced by the external modeling
// tool. Object boundaries are marked by header lines of the form
// "OBJECT <Type> <Id>"; everything else is free-form object body text and is
// ignored during scanning.
package inventory

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"

	"calstage/internal/issue"
)

// headerPattern matches an object header line: optional leading whitespace,
// the literal token OBJECT, a letters-only type token, and a non-negative
// integer id followed by a word boundary. The match is case-sensitive; the
// modeling tool always emits the literal in upper case.
var headerPattern = regexp.MustCompile(`^\s*OBJECT\s+([A-Za-z]+)\s+(\d+)\b`)

type (
	// ObjectRecord is a single parsed (type, id) pair.
	ObjectRecord struct {
		// Type is the free-form object type token (e.g. "Table", "Page").
		Type string
		// Id is the non-negative object identifier.
		Id int
	}

	// TypeInventory maps an object type to the ids collected for it, in
	// encounter order. Ids are deliberately not deduplicated: a duplicated
	// id in the export shows up duplicated in the summary, which makes
	// malformed exports visible instead of silently masking them.
	TypeInventory map[string][]int
)

// Scan reads export text from r and collects every object header into a
// TypeInventory. Lines that do not match the header pattern are skipped.
func Scan(r io.Reader) (TypeInventory, error) {
	inv := make(TypeInventory)

	scanner := bufio.NewScanner(r)
	// Object body lines can be long (serialized layout properties); raise the
	// per-line limit well above bufio's 64K default.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		m := headerPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[2])
		if err != nil {
			// Unreachable for \d+ short of overflow; skip the line.
			continue
		}
		inv[m[1]] = append(inv[m[1]], id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inv, nil
}

// ScanFile reads the export at path and collects its object headers.
// Read failures are surfaced as actionable errors naming the path; they are
// local to this inspection and safe to retry with a different selection.
func ScanFile(path string) (TypeInventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readError(path, err)
	}
	defer f.Close()

	inv, err := Scan(f)
	if err != nil {
		return nil, readError(path, err)
	}
	return inv, nil
}

func readError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("read export").
		WithResource(path).
		WithSuggestion("Check that the file exists and is readable").
		WithSuggestion("Run 'calstage sources' to list available exports").
		Wrap(err).
		BuildError()
}

// Empty reports whether no object headers were collected. An empty inventory
// is a valid steady state (the export has no recognizable headers), distinct
// from a read failure.
func (inv TypeInventory) Empty() bool {
	return len(inv) == 0
}

// Types returns the object types in lexicographic order.
func (inv TypeInventory) Types() []string {
	types := make([]string, 0, len(inv))
	for t := range inv {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Summary renders one line per type, types in lexicographic order, formatted
// "<Type>: <ranges>". Ids are sorted ascending before range compression.
func (inv TypeInventory) Summary() []string {
	types := inv.Types()
	lines := make([]string, 0, len(types))
	for _, typ := range types {
		ids := make([]int, len(inv[typ]))
		copy(ids, inv[typ])
		sort.Ints(ids)
		lines = append(lines, typ+": "+CompressRanges(ids))
	}
	return lines
}
