// SPDX-License-Identifier: MPL-2.0

package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrInvalidVersion indicates the version string is not valid semver.
	ErrInvalidVersion = errors.New("invalid semantic version")

	//nolint:gochecknoglobals // Test seam for os.Executable().
	osExecutable = os.Executable

	//nolint:gochecknoglobals // Test seam for filepath.EvalSymlinks().
	evalSymlinks = filepath.EvalSymlinks
)

type (
	// UpgradeCheck is the result of comparing the running binary against the
	// latest (or a requested) GitHub release.
	UpgradeCheck struct {
		CurrentVersion   string
		LatestVersion    string
		TargetRelease    *Release // nil when up to date, managed, or pre-release ahead
		InstallMethod    InstallMethod
		UpgradeAvailable bool
		Message          string
	}

	// Checker compares the running binary against published releases. It
	// only reports; applying an upgrade is left to the package manager or a
	// manual download.
	Checker struct {
		client         *GitHubClient
		currentVersion string
	}

	// CheckerOption configures a Checker during construction.
	CheckerOption func(*Checker)
)

// WithGitHubClient overrides the default GitHubClient used by the Checker.
func WithGitHubClient(c *GitHubClient) CheckerOption {
	return func(ch *Checker) {
		ch.client = c
	}
}

// NewChecker creates a Checker for the given currentVersion.
func NewChecker(currentVersion string, opts ...CheckerOption) *Checker {
	ch := &Checker{
		currentVersion: currentVersion,
	}
	for _, opt := range opts {
		opt(ch)
	}
	if ch.client == nil {
		ch.client = NewGitHubClient()
	}
	return ch
}

// Check determines whether a newer release exists than the running binary.
// targetVersion, when non-empty, pins the comparison to a specific release
// tag instead of the latest stable one.
//
// Managed installs (Homebrew, go install) return immediately with guidance
// for the relevant package manager; no API call is made.
func (ch *Checker) Check(ctx context.Context, targetVersion string) (*UpgradeCheck, error) {
	execPath, err := resolveExecPath()
	if err != nil {
		return nil, fmt.Errorf("resolving executable path: %w", err)
	}

	method := DetectInstallMethod(execPath)

	if method == InstallMethodHomebrew || method == InstallMethodGoInstall {
		return &UpgradeCheck{
			CurrentVersion:   ch.currentVersion,
			InstallMethod:    method,
			UpgradeAvailable: false,
			Message:          managedInstallMessage(method, execPath),
		}, nil
	}

	var release *Release
	if targetVersion != "" {
		tag, tagErr := normalizeVersion(targetVersion)
		if tagErr != nil {
			return nil, tagErr
		}
		r, fetchErr := ch.client.GetReleaseByTag(ctx, tag)
		if fetchErr != nil {
			return nil, fmt.Errorf("fetching release %s: %w", tag, fetchErr)
		}
		release = r
	} else {
		releases, listErr := ch.client.ListReleases(ctx)
		if listErr != nil {
			return nil, fmt.Errorf("listing releases: %w", listErr)
		}
		if len(releases) == 0 {
			return nil, fmt.Errorf("no stable releases found")
		}
		// ListReleases sorts descending; the first entry is the newest.
		release = &releases[0]
	}

	currentNorm, err := normalizeVersion(ch.currentVersion)
	if err != nil {
		return nil, fmt.Errorf("current version: %w", err)
	}
	targetNorm, err := normalizeVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("release version: %w", err)
	}

	// A pre-release at or beyond the target stable version happens during
	// development; the user already runs something newer than any release.
	if semver.Prerelease(currentNorm) != "" && semver.Compare(currentNorm, targetNorm) >= 0 {
		return &UpgradeCheck{
			CurrentVersion: ch.currentVersion,
			LatestVersion:  release.TagName,
			InstallMethod:  method,
			Message:        fmt.Sprintf("Running pre-release %s (ahead of %s).", ch.currentVersion, release.TagName),
		}, nil
	}

	if semver.Compare(currentNorm, targetNorm) >= 0 {
		return &UpgradeCheck{
			CurrentVersion: ch.currentVersion,
			LatestVersion:  release.TagName,
			InstallMethod:  method,
			Message:        "Already up to date.",
		}, nil
	}

	return &UpgradeCheck{
		CurrentVersion:   ch.currentVersion,
		LatestVersion:    release.TagName,
		TargetRelease:    release,
		InstallMethod:    method,
		UpgradeAvailable: true,
		Message:          fmt.Sprintf("Upgrade available: %s -> %s", ch.currentVersion, release.TagName),
	}, nil
}

// resolveExecPath returns the absolute, symlink-resolved path to the
// currently running binary.
func resolveExecPath() (string, error) {
	p, err := osExecutable()
	if err != nil {
		return "", fmt.Errorf("determining executable path: %w", err)
	}

	resolved, err := evalSymlinks(p)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %s: %w", p, err)
	}

	return resolved, nil
}

// managedInstallMessage advises the user to upgrade via their package
// manager.
func managedInstallMessage(method InstallMethod, execPath string) string {
	switch method {
	case InstallMethodHomebrew:
		return fmt.Sprintf("Detected Homebrew installation at %s\n\nTo upgrade, run:\n  brew upgrade calstage", execPath)
	case InstallMethodGoInstall:
		return fmt.Sprintf("Detected go install at %s\n\nTo upgrade, run:\n  go install calstage@latest", execPath)
	case InstallMethodScript, InstallMethodUnknown:
		return ""
	}
	return ""
}

// normalizeVersion ensures the version string has the "v" prefix required by
// the semver package and validates the result. Returns ErrInvalidVersion for
// anything that does not normalize to valid semver.
func normalizeVersion(v string) (string, error) {
	norm := v
	if !strings.HasPrefix(norm, "v") {
		norm = "v" + norm
	}
	if !semver.IsValid(norm) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return norm, nil
}
