// SPDX-License-Identifier: MPL-2.0

// Package staging orchestrates the two-phase split/seed/merge lifecycle of
// source exports.
//
// Prepare resets the per-code staging directories, splits the combined
// export into per-object files, and seeds a working copy for manual merge
// edits. Merge recombines the hand-edited working copy into a single export.
// Both phases walk the configured codes in order and isolate per-code
// failures: one bad export never aborts the batch.
package staging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"calstage/internal/catalog"
	"calstage/internal/splitjoin"
)

// MergePrefix prefixes the merge-staging directory and the recombined export
// for a code: DEV stages into MRG2DEV/ and merges into MRG2DEV.txt.
const MergePrefix = "MRG2"

// Pipeline runs the Prepare and Merge phases over a working directory. It
// owns the staging directories under WorkDir but never creates or deletes
// the source exports themselves.
type Pipeline struct {
	WorkDir string
	Tool    splitjoin.Tool
}

// NewPipeline creates a Pipeline over workDir using the given tool.
func NewPipeline(workDir string, tool splitjoin.Tool) *Pipeline {
	return &Pipeline{WorkDir: workDir, Tool: tool}
}

// SplitDir returns the destination of the split operation for code,
// <workDir>/<CODE>/.
func (p *Pipeline) SplitDir(code catalog.SourceCode) string {
	return filepath.Join(p.WorkDir, string(code))
}

// MergeDir returns the merge-staging directory for code, <workDir>/MRG2<CODE>/.
func (p *Pipeline) MergeDir(code catalog.SourceCode) string {
	return filepath.Join(p.WorkDir, MergePrefix+string(code))
}

// MergeFile returns the recombined export path for code, <workDir>/MRG2<CODE>.txt.
func (p *Pipeline) MergeFile(code catalog.SourceCode) string {
	return filepath.Join(p.WorkDir, MergePrefix+string(code)+catalog.ExportExt)
}

// Prepare runs the Prepare phase for the given codes, in order.
//
// Per code: if no export file exists the code is skipped silently; otherwise
// the split and merge-staging directories are destructively reset, the
// export is split into the split directory, and the result is copied into
// the merge-staging directory. The destructive reset is the idempotency
// mechanism: Prepare is a full rebuild, never an incremental sync.
//
// The only fatal condition is an unavailable tool, checked once up front;
// everything else lands in the Report.
func (p *Pipeline) Prepare(ctx context.Context, codes []catalog.SourceCode) (*Report, error) {
	if err := p.Tool.Available(); err != nil {
		return nil, err
	}

	report := &Report{}
	matched := false

	for _, code := range codes {
		exportPath := catalog.ExportPath(p.WorkDir, code)
		if !fileExists(exportPath) {
			continue
		}
		matched = true

		splitDir := p.SplitDir(code)
		mergeDir := p.MergeDir(code)

		if err := resetDir(splitDir); err != nil {
			report.warn(code, fmt.Sprintf("reset %s", splitDir), err)
			continue
		}
		if err := resetDir(mergeDir); err != nil {
			report.warn(code, fmt.Sprintf("reset %s", mergeDir), err)
			continue
		}

		if err := p.Tool.Split(ctx, exportPath, splitDir); err != nil {
			report.warn(code, fmt.Sprintf("split %s", exportPath), err)
			continue
		}

		n, err := countFiles(splitDir)
		if err != nil {
			report.warn(code, fmt.Sprintf("inspect %s", splitDir), err)
			continue
		}
		if n == 0 {
			report.notice(code, fmt.Sprintf("split produced no files in %s, nothing to seed", splitDir))
			continue
		}

		if err := copyTree(splitDir, mergeDir); err != nil {
			report.warn(code, fmt.Sprintf("seed %s", mergeDir), err)
			continue
		}

		report.notice(code, fmt.Sprintf("prepared %d object file(s) into %s", n, mergeDir))
	}

	if !matched {
		report.warn("", fmt.Sprintf("no export found for any recognized code in %s", p.WorkDir), nil)
	}

	return report, nil
}

// Merge runs the Merge phase for the given codes, in order.
//
// Per code: if the merge-staging directory does not exist the code is
// skipped silently; an empty directory yields a notice; otherwise any
// previous recombined export is deleted and the join tool rebuilds it from
// the *.txt files directly inside the merge-staging directory.
func (p *Pipeline) Merge(ctx context.Context, codes []catalog.SourceCode) (*Report, error) {
	if err := p.Tool.Available(); err != nil {
		return nil, err
	}

	report := &Report{}

	for _, code := range codes {
		mergeDir := p.MergeDir(code)
		if !dirExists(mergeDir) {
			continue
		}

		files, err := listTxtFiles(mergeDir)
		if err != nil {
			report.warn(code, fmt.Sprintf("list %s", mergeDir), err)
			continue
		}
		if len(files) == 0 {
			report.notice(code, fmt.Sprintf("no object files in %s, nothing to merge", mergeDir))
			continue
		}

		mergeFile := p.MergeFile(code)
		if err := removeIfExists(mergeFile); err != nil {
			report.warn(code, fmt.Sprintf("remove previous %s", mergeFile), err)
			continue
		}

		glob := filepath.Join(mergeDir, "*"+catalog.ExportExt)
		if err := p.Tool.Join(ctx, glob, mergeFile); err != nil {
			report.warn(code, fmt.Sprintf("join %s", glob), err)
			continue
		}

		report.notice(code, fmt.Sprintf("merged %d object file(s) into %s", len(files), mergeFile))
	}

	return report, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
