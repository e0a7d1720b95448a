// SPDX-License-Identifier: MPL-2.0

package config

// settingsDirOverride allows tests to override the settings directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var settingsDirOverride string

// settingsFileOverride points at a specific settings file, set from the
// --config flag.
var settingsFileOverride string

// Reset clears all overrides. Call from test cleanup to restore defaults.
func Reset() {
	settingsDirOverride = ""
	settingsFileOverride = ""
}

// SetSettingsDirOverride sets a custom settings directory path. Primarily a
// test seam.
func SetSettingsDirOverride(dir string) {
	settingsDirOverride = dir
}

// SetSettingsFileOverride points Load and Save at a specific settings file,
// bypassing the platform directory resolution.
func SetSettingsFileOverride(path string) {
	settingsFileOverride = path
}
