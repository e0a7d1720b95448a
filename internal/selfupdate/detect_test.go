// SPDX-License-Identifier: MPL-2.0

package selfupdate

import (
	"path/filepath"
	"runtime/debug"
	"testing"
)

func TestDetectInstallMethodHomebrew(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "macOS ARM", path: "/opt/homebrew/bin/calstage"},
		{name: "macOS Intel", path: "/usr/local/Cellar/calstage/1.0.0/bin/calstage"},
		{name: "Linuxbrew", path: "/home/linuxbrew/.linuxbrew/bin/calstage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectInstallMethod(tt.path); got != InstallMethodHomebrew {
				t.Errorf("DetectInstallMethod(%q) = %v, want homebrew", tt.path, got)
			}
		})
	}
}

func TestDetectInstallMethodScript(t *testing.T) {
	got := DetectInstallMethod("/home/user/.local/bin/calstage")
	if got != InstallMethodScript {
		t.Errorf("got %v, want script", got)
	}
}

func TestDetectInstallMethodGoInstall(t *testing.T) {
	gopath := filepath.Join(t.TempDir(), "go")
	t.Setenv("GOPATH", gopath)

	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Path: "calstage"}, true
	}

	got := DetectInstallMethod(filepath.Join(gopath, "bin", "calstage"))
	if got != InstallMethodGoInstall {
		t.Errorf("got %v, want goinstall", got)
	}
}

func TestDetectInstallMethodGoInstallRequiresBuildInfo(t *testing.T) {
	gopath := filepath.Join(t.TempDir(), "go")
	t.Setenv("GOPATH", gopath)

	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return nil, false
	}

	// A binary copied into GOPATH/bin without matching build info must not
	// look like a go install.
	got := DetectInstallMethod(filepath.Join(gopath, "bin", "calstage"))
	if got == InstallMethodGoInstall {
		t.Error("binary without build info must not detect as goinstall")
	}
}

func TestDetectInstallMethodUnknown(t *testing.T) {
	t.Setenv("GOPATH", filepath.Join(t.TempDir(), "go"))
	got := DetectInstallMethod("/usr/bin/calstage")
	if got != InstallMethodUnknown {
		t.Errorf("got %v, want unknown", got)
	}
}

func TestInstallMethodString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method InstallMethod
		want   string
	}{
		{InstallMethodUnknown, "unknown"},
		{InstallMethodScript, "script"},
		{InstallMethodHomebrew, "homebrew"},
		{InstallMethodGoInstall, "goinstall"},
		{InstallMethod(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestParseMethodHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hint string
		want InstallMethod
	}{
		{"homebrew", InstallMethodHomebrew},
		{"Homebrew", InstallMethodHomebrew},
		{"goinstall", InstallMethodGoInstall},
		{"script", InstallMethodScript},
		{"bogus", InstallMethodUnknown},
	}

	for _, tt := range tests {
		if got := parseMethodHint(tt.hint); got != tt.want {
			t.Errorf("parseMethodHint(%q) = %v, want %v", tt.hint, got, tt.want)
		}
	}
}

func TestIsInGOPATHBin(t *testing.T) {
	gopath := filepath.Join(t.TempDir(), "go")
	t.Setenv("GOPATH", gopath)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "inside bin", path: filepath.Join(gopath, "bin", "calstage"), want: true},
		{name: "sibling prefix dir", path: gopath + "bin/calstage", want: false},
		{name: "elsewhere", path: "/usr/bin/calstage", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInGOPATHBin(tt.path); got != tt.want {
				t.Errorf("isInGOPATHBin(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
