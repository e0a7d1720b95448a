// SPDX-License-Identifier: MPL-2.0

// Package selfupdate answers "is there a newer release?" for the running
// binary. It queries the GitHub Releases API, detects how the binary was
// installed (script, Homebrew, go install, unknown) and compares semantic
// versions. Managed installs are never upgraded in place; the check reports
// the package-manager command to run instead.
package selfupdate
