// SPDX-License-Identifier: MPL-2.0

// Package catalog determines which named source exports currently exist in
// the working directory. The catalog holds no state: availability is
// re-derived from the filesystem on every call, so a listing always reflects
// what is on disk right now.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"calstage/internal/platform"
)

// ExportExt is the filename extension of a combined export file.
const ExportExt = ".txt"

var (
	// ErrInvalidSourceCode is the sentinel error wrapped by InvalidSourceCodeError.
	ErrInvalidSourceCode = errors.New("invalid source code")
)

type (
	// SourceCode is a 3-character alphanumeric tag naming a class of export,
	// e.g. a development stream or a deployment target. Always upper case.
	SourceCode string

	// InvalidSourceCodeError is returned when a source code is not exactly
	// three characters of [A-Z0-9], or names a Windows-reserved file. It
	// wraps ErrInvalidSourceCode for errors.Is() compatibility.
	InvalidSourceCodeError struct {
		Value  string
		Reason string
	}

	// SourceExport is a discovered export file, identified by its code and
	// the absolute path <workingDir>/<CODE>.txt.
	SourceExport struct {
		Code SourceCode
		Path string
	}
)

// Error returns the error message for InvalidSourceCodeError.
func (e *InvalidSourceCodeError) Error() string {
	return fmt.Sprintf("invalid source code %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidSourceCode for errors.Is() checks.
func (e *InvalidSourceCodeError) Unwrap() error {
	return ErrInvalidSourceCode
}

// ParseSourceCode normalizes raw to upper case and validates it: exactly
// three characters, each in [A-Z0-9]. On Windows, codes that collide with
// reserved device filenames (CON, PRN, ...) are rejected as well, because
// the code becomes a staging directory name.
func ParseSourceCode(raw string) (SourceCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if len(code) != 3 {
		return "", &InvalidSourceCodeError{Value: raw, Reason: "must be exactly 3 characters"}
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", &InvalidSourceCodeError{Value: raw, Reason: "characters must be A-Z or 0-9"}
		}
	}
	if runtime.GOOS == platform.Windows && platform.IsWindowsReservedName(code) {
		return "", &InvalidSourceCodeError{Value: raw, Reason: "reserved filename on Windows"}
	}

	return SourceCode(code), nil
}

// ParseSourceCodes parses each entry of raw in order. The first invalid
// entry aborts with its error.
func ParseSourceCodes(raw []string) ([]SourceCode, error) {
	codes := make([]SourceCode, 0, len(raw))
	for _, r := range raw {
		code, err := ParseSourceCode(r)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// ExportPath returns the export file path for code under workingDir.
func ExportPath(workingDir string, code SourceCode) string {
	return filepath.Join(workingDir, string(code)+ExportExt)
}

// ListAvailable returns the exports that exist on disk right now, in the
// order the recognized codes were supplied (never re-sorted). Codes without
// a matching file are simply omitted; the result is empty both when the
// working directory has no exports and when no codes are configured, and
// callers are expected to turn that into a user-facing notice.
func ListAvailable(workingDir string, codes []SourceCode) []SourceExport {
	available := make([]SourceExport, 0, len(codes))
	for _, code := range codes {
		path := ExportPath(workingDir, code)
		if fileExists(path) {
			available = append(available, SourceExport{Code: code, Path: path})
		}
	}
	return available
}

// fileExists checks that path exists and is a regular file, not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
