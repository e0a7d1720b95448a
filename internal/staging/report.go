// SPDX-License-Identifier: MPL-2.0

package staging

import "calstage/internal/catalog"

type (
	// Level classifies a report entry. Notices are valid steady states
	// (nothing pending for a code); warnings are per-code failures.
	Level int

	// Entry is one per-code outcome collected during a Prepare or Merge
	// batch. Code is empty for batch-level entries, such as the aggregate
	// warning when no export matched at all.
	Entry struct {
		Code    catalog.SourceCode
		Level   Level
		Message string
		// Err is the underlying cause for warnings, nil for notices.
		Err error
	}

	// Report accumulates the outcomes of one batch run. Failures never
	// abort the batch; they land here instead, so every entry is
	// individually actionable.
	Report struct {
		Entries []Entry
	}
)

const (
	LevelNotice Level = iota
	LevelWarning
)

func (r *Report) notice(code catalog.SourceCode, msg string) {
	r.Entries = append(r.Entries, Entry{Code: code, Level: LevelNotice, Message: msg})
}

func (r *Report) warn(code catalog.SourceCode, msg string, err error) {
	r.Entries = append(r.Entries, Entry{Code: code, Level: LevelWarning, Message: msg, Err: err})
}

// Warnings returns only the warning entries.
func (r *Report) Warnings() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Level == LevelWarning {
			out = append(out, e)
		}
	}
	return out
}

// HasWarnings reports whether any per-code step failed.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings()) > 0
}
