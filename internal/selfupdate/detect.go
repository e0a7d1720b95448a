// SPDX-License-Identifier: MPL-2.0

package selfupdate

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	// Homebrew prefixes on the platforms it supports.
	homebrewMacARM   = "/opt/homebrew/"
	homebrewMacIntel = "/usr/local/Cellar/"
	homebrewLinux    = "/home/linuxbrew/.linuxbrew/"

	// scriptInstallDir is where the shell install script places the binary.
	scriptInstallDir = "/.local/bin/"

	// modulePath confirms a go-install origin via build info.
	modulePath = "calstage"

	// InstallMethodUnknown means the install method could not be
	// determined, typically a manual download.
	InstallMethodUnknown InstallMethod = 0

	// InstallMethodScript means installation via the shell install script.
	InstallMethodScript InstallMethod = 1

	// InstallMethodHomebrew means installation via brew install; upgrades
	// belong to brew upgrade.
	InstallMethodHomebrew InstallMethod = 2

	// InstallMethodGoInstall means installation via go install; upgrades
	// belong to re-running go install.
	InstallMethodGoInstall InstallMethod = 3
)

var (
	// installMethodHint is set via -ldflags at build time to override
	// detection. When non-empty it wins over all path heuristics.
	//
	//nolint:gochecknoglobals // ldflags injection needs a package-level var.
	installMethodHint string

	// readBuildInfo is a test seam for debug.ReadBuildInfo.
	//
	//nolint:gochecknoglobals // Test seam.
	readBuildInfo = debug.ReadBuildInfo
)

// InstallMethod identifies how the binary was installed. Managed installs
// (Homebrew, go install) defer upgrades to their package manager.
type InstallMethod int

// String returns a human-readable name for the install method.
func (m InstallMethod) String() string {
	switch m {
	case InstallMethodUnknown:
		return "unknown"
	case InstallMethodScript:
		return "script"
	case InstallMethodHomebrew:
		return "homebrew"
	case InstallMethodGoInstall:
		return "goinstall"
	}
	return "unknown"
}

// DetectInstallMethod determines the install method from the executable path
// and build information. Priority: the build-time ldflags hint, then Homebrew
// path heuristics, then GOPATH/bin plus build-info confirmation for
// go install, then the script install dir, then Unknown.
func DetectInstallMethod(execPath string) InstallMethod {
	if installMethodHint != "" {
		return parseMethodHint(installMethodHint)
	}

	if strings.Contains(execPath, homebrewMacARM) ||
		strings.Contains(execPath, homebrewMacIntel) ||
		strings.Contains(execPath, homebrewLinux) {
		return InstallMethodHomebrew
	}

	// go install requires both the path and the build info to agree,
	// otherwise a binary copied into GOPATH/bin would false-positive.
	if isInGOPATHBin(execPath) && hasKnownModulePath() {
		return InstallMethodGoInstall
	}

	if strings.Contains(execPath, scriptInstallDir) {
		return InstallMethodScript
	}

	return InstallMethodUnknown
}

// parseMethodHint converts a build-time ldflags hint to an InstallMethod.
func parseMethodHint(hint string) InstallMethod {
	switch strings.ToLower(hint) {
	case "homebrew":
		return InstallMethodHomebrew
	case "goinstall":
		return InstallMethodGoInstall
	case "script":
		return InstallMethodScript
	default:
		return InstallMethodUnknown
	}
}

// isInGOPATHBin checks whether the given path is inside $GOPATH/bin, falling
// back to ~/go when GOPATH is unset, matching the toolchain default.
func isInGOPATHBin(execPath string) bool {
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return false
		}
		gopath = filepath.Join(home, "go")
	}

	gopathBin := filepath.Clean(filepath.Join(gopath, "bin"))
	cleanExec := filepath.Clean(execPath)

	// The trailing separator matches the directory boundary, not a prefix
	// like /home/user/gobin vs /home/user/go/bin.
	return strings.HasPrefix(cleanExec, gopathBin+string(filepath.Separator)) ||
		cleanExec == gopathBin
}

// hasKnownModulePath checks whether the running binary's build info carries
// the expected module path.
func hasKnownModulePath() bool {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return false
	}
	return strings.Contains(info.Path, modulePath)
}
