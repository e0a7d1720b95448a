// SPDX-License-Identifier: MPL-2.0

// Package splitjoin abstracts the external split/join capability behind a
// small interface. The real tool decomposes one combined export file into one
// file per contained object and recombines such files into a single export;
// this package only locates and invokes it, it never transforms object text
// itself.
package splitjoin

import (
	"context"
	"errors"
	"strings"
)

// ErrToolUnavailable indicates the external split/join capability cannot be
// located. The condition is fatal to a whole Prepare/Merge batch and is
// recoverable only by operator action (installing or configuring the tool).
var ErrToolUnavailable = errors.New("split/join tool unavailable")

// Tool is the injected interface to the external split/join capability.
//
// Split decomposes the combined export at sourceFile into one file per
// contained object inside destDir, preserving the original formatting.
//
// Join recombines the object files matched by sourceGlob into a single
// combined export at destFile, in a format Split can decompose again.
type Tool interface {
	// Available probes whether the capability can be invoked at all.
	// A nil return means Split and Join can be attempted.
	Available() error

	Split(ctx context.Context, sourceFile, destDir string) error

	Join(ctx context.Context, sourceGlob, destFile string) error
}

// Select picks the Tool implementation for the given settings values: the
// shell templates when both are configured, the plain binary otherwise.
func Select(bin, splitCommand, joinCommand string) Tool {
	if strings.TrimSpace(splitCommand) != "" && strings.TrimSpace(joinCommand) != "" {
		return NewShellTool(splitCommand, joinCommand)
	}
	return NewExecTool(bin)
}
