// SPDX-License-Identifier: EPL-2.0

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PathEntries returns the directories on the PATH environment variable,
// split with the OS-specific list separator. Empty entries are dropped.
func PathEntries() []string {
	raw := os.Getenv("PATH")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, string(os.PathListSeparator))
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			entries = append(entries, p)
		}
	}
	return entries
}

// OnPath reports whether dir is one of the PATH entries, comparing cleaned
// paths. On Windows the comparison is case-insensitive.
func OnPath(dir string) bool {
	want := filepath.Clean(dir)
	for _, entry := range PathEntries() {
		have := filepath.Clean(entry)
		if runtime.GOOS == Windows {
			if strings.EqualFold(have, want) {
				return true
			}
			continue
		}
		if have == want {
			return true
		}
	}
	return false
}

// PathExportHint returns the shell statement an operator can use to put dir
// on the PATH, in the syntax of the current platform's default shell.
func PathExportHint(dir string) string {
	if runtime.GOOS == Windows {
		return fmt.Sprintf(`$env:Path += ";%s"`, dir)
	}
	return fmt.Sprintf(`export PATH="$PATH:%s"`, dir)
}
