// SPDX-License-Identifier: MPL-2.0

package splitjoin

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecTool invokes the split/join tool as an external binary, one process
// per operation.
type ExecTool struct {
	// Bin is the tool executable, either a bare name resolved via PATH or
	// an absolute path.
	Bin string
}

// NewExecTool creates an ExecTool for the given binary.
func NewExecTool(bin string) *ExecTool {
	return &ExecTool{Bin: bin}
}

// Available resolves Bin via PATH lookup. A failed lookup wraps
// ErrToolUnavailable so callers can classify the condition.
func (t *ExecTool) Available() error {
	if strings.TrimSpace(t.Bin) == "" {
		return fmt.Errorf("%w: no tool binary configured", ErrToolUnavailable)
	}
	if _, err := exec.LookPath(t.Bin); err != nil {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return nil
}

// Split runs "<bin> split -source <file> -destination <dir> -preserve-formatting -force".
func (t *ExecTool) Split(ctx context.Context, sourceFile, destDir string) error {
	return t.run(ctx,
		"split",
		"-source", sourceFile,
		"-destination", destDir,
		"-preserve-formatting",
		"-force",
	)
}

// Join runs "<bin> join -source <glob> -destination <file> -force". The glob
// is passed through verbatim; the tool expands it itself.
func (t *ExecTool) Join(ctx context.Context, sourceGlob, destFile string) error {
	return t.run(ctx,
		"join",
		"-source", sourceGlob,
		"-destination", destFile,
		"-force",
	)
}

// run executes the tool and folds captured stderr into the returned error,
// since the tool reports its diagnostics there.
func (t *ExecTool) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, t.Bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s %s: %w: %s", t.Bin, args[0], err, msg)
		}
		return fmt.Errorf("%s %s: %w", t.Bin, args[0], err)
	}
	return nil
}
