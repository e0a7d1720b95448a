// SPDX-License-Identifier: MPL-2.0

package splitjoin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Environment variables exposed to shell command templates.
const (
	// EnvSource carries the operation's source (export file for split, glob
	// for join).
	EnvSource = "CALSTAGE_SOURCE"
	// EnvDestination carries the operation's destination (directory for
	// split, export file for join).
	EnvDestination = "CALSTAGE_DESTINATION"
)

// ShellTool invokes the split/join capability through shell one-liners run
// in the embedded POSIX interpreter. This keeps tool command lines portable
// across platforms: the same template syntax works whether or not the host
// has a POSIX shell.
//
// The templates reference the operation parameters via $CALSTAGE_SOURCE and
// $CALSTAGE_DESTINATION, e.g.:
//
//	splitjoin.exe split -source "$CALSTAGE_SOURCE" -destination "$CALSTAGE_DESTINATION"
type ShellTool struct {
	// SplitCommand is the shell template for the split operation.
	SplitCommand string
	// JoinCommand is the shell template for the join operation.
	JoinCommand string
}

// NewShellTool creates a ShellTool from the two command templates.
func NewShellTool(splitCommand, joinCommand string) *ShellTool {
	return &ShellTool{SplitCommand: splitCommand, JoinCommand: joinCommand}
}

// Available checks that both templates are present and parse as valid shell.
// A syntax error here wraps ErrToolUnavailable: a template that cannot parse
// can never be invoked.
func (t *ShellTool) Available() error {
	if strings.TrimSpace(t.SplitCommand) == "" || strings.TrimSpace(t.JoinCommand) == "" {
		return fmt.Errorf("%w: split and join command templates must both be configured", ErrToolUnavailable)
	}
	for name, script := range map[string]string{"split": t.SplitCommand, "join": t.JoinCommand} {
		if _, err := syntax.NewParser().Parse(strings.NewReader(script), name); err != nil {
			return fmt.Errorf("%w: %s command template: %v", ErrToolUnavailable, name, err)
		}
	}
	return nil
}

// Split runs the split template with EnvSource/EnvDestination bound.
func (t *ShellTool) Split(ctx context.Context, sourceFile, destDir string) error {
	return t.run(ctx, "split", t.SplitCommand, sourceFile, destDir)
}

// Join runs the join template with EnvSource/EnvDestination bound.
func (t *ShellTool) Join(ctx context.Context, sourceGlob, destFile string) error {
	return t.run(ctx, "join", t.JoinCommand, sourceGlob, destFile)
}

func (t *ShellTool) run(ctx context.Context, name, script, source, destination string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return fmt.Errorf("parse %s command template: %w", name, err)
	}

	env := append(os.Environ(),
		EnvSource+"="+source,
		EnvDestination+"="+destination,
	)

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, os.Stdout, os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("create shell interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		return fmt.Errorf("%s command: %w", name, err)
	}
	return nil
}
