// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps, plus a small catalog of
// Markdown-formatted guidance for the recoverable conditions the CLI can hit
// (missing split/join tool, no exports, unreadable settings).
package issue
