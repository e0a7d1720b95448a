// SPDX-License-Identifier: MPL-2.0

package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubExecPath redirects executable path resolution for the duration of a
// test. Not parallel-safe; callers must not use t.Parallel.
func stubExecPath(t *testing.T, path string) {
	t.Helper()
	origExec := osExecutable
	origEval := evalSymlinks
	t.Cleanup(func() {
		osExecutable = origExec
		evalSymlinks = origEval
	})
	osExecutable = func() (string, error) { return path, nil }
	evalSymlinks = func(p string) (string, error) { return p, nil }
}

func releaseServer(t *testing.T, releases []githubRelease) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "/releases/tags/") {
			tag := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
			for _, rel := range releases {
				if rel.TagName == tag {
					if err := json.NewEncoder(w).Encode(rel); err != nil {
						t.Errorf("encoding release: %v", err)
					}
					return
				}
			}
			http.NotFound(w, r)
			return
		}
		if err := json.NewEncoder(w).Encode(releases); err != nil {
			t.Errorf("encoding releases: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckUpgradeAvailable(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, []githubRelease{
		{TagName: "v1.2.0", Name: "1.2.0"},
		{TagName: "v1.1.0", Name: "1.1.0"},
	})

	ch := NewChecker("v1.0.0", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	got, err := ch.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if !got.UpgradeAvailable {
		t.Error("UpgradeAvailable = false, want true")
	}
	if got.LatestVersion != "v1.2.0" {
		t.Errorf("LatestVersion = %q, want v1.2.0", got.LatestVersion)
	}
	if got.TargetRelease == nil || got.TargetRelease.TagName != "v1.2.0" {
		t.Errorf("TargetRelease = %+v, want v1.2.0", got.TargetRelease)
	}
	if !strings.Contains(got.Message, "v1.0.0 -> v1.2.0") {
		t.Errorf("Message = %q, want upgrade arrow", got.Message)
	}
}

func TestCheckAlreadyUpToDate(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, []githubRelease{{TagName: "v1.2.0", Name: "1.2.0"}})

	ch := NewChecker("v1.2.0", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	got, err := ch.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if got.UpgradeAvailable {
		t.Error("UpgradeAvailable = true, want false")
	}
	if got.TargetRelease != nil {
		t.Error("TargetRelease should be nil when up to date")
	}
	if got.Message != "Already up to date." {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestCheckPrereleaseAhead(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, []githubRelease{{TagName: "v1.2.0", Name: "1.2.0"}})

	ch := NewChecker("v1.3.0-rc.1", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	got, err := ch.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if got.UpgradeAvailable {
		t.Error("UpgradeAvailable = true, want false for pre-release ahead")
	}
	if !strings.Contains(got.Message, "pre-release") {
		t.Errorf("Message = %q, want pre-release notice", got.Message)
	}
}

func TestCheckSpecificTag(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, []githubRelease{
		{TagName: "v1.2.0", Name: "1.2.0"},
		{TagName: "v1.1.0", Name: "1.1.0"},
	})

	ch := NewChecker("v1.0.0", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	got, err := ch.Check(context.Background(), "1.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if got.LatestVersion != "v1.1.0" {
		t.Errorf("LatestVersion = %q, want v1.1.0 (pinned tag)", got.LatestVersion)
	}
	if !got.UpgradeAvailable {
		t.Error("UpgradeAvailable = false, want true")
	}
}

func TestCheckMissingTag(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, nil)

	ch := NewChecker("v1.0.0", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	_, err := ch.Check(context.Background(), "v9.9.9")
	if !errors.Is(err, ErrReleaseNotFound) {
		t.Errorf("got %v, want ErrReleaseNotFound", err)
	}
}

func TestCheckManagedInstallSkipsAPI(t *testing.T) {
	stubExecPath(t, "/opt/homebrew/bin/calstage")

	// No server: a managed install must not hit the API at all.
	ch := NewChecker("v1.0.0", WithGitHubClient(NewGitHubClient(WithBaseURL("http://127.0.0.1:0"))))
	got, err := ch.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if got.UpgradeAvailable {
		t.Error("UpgradeAvailable = true, want false for managed install")
	}
	if got.InstallMethod != InstallMethodHomebrew {
		t.Errorf("InstallMethod = %v, want homebrew", got.InstallMethod)
	}
	if !strings.Contains(got.Message, "brew upgrade") {
		t.Errorf("Message = %q, want brew upgrade guidance", got.Message)
	}
}

func TestCheckInvalidCurrentVersion(t *testing.T) {
	stubExecPath(t, "/usr/bin/calstage")

	srv := releaseServer(t, []githubRelease{{TagName: "v1.2.0", Name: "1.2.0"}})

	ch := NewChecker("not-a-version", WithGitHubClient(NewGitHubClient(WithBaseURL(srv.URL))))
	_, err := ch.Check(context.Background(), "")
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("got %v, want ErrInvalidVersion", err)
	}
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1.0.0", want: "v1.0.0"},
		{in: "v1.0.0", want: "v1.0.0"},
		{in: "v2.1.3-rc.1", want: "v2.1.3-rc.1"},
		{in: "banana", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normalizeVersion(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeVersion(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
