// SPDX-License-Identifier: MPL-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"calstage/internal/issue"
	"calstage/internal/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the settings directory.
	AppName = "calstage"
	// SettingsFileName is the name of the settings file.
	SettingsFileName = "config.json"
	// envPrefix is the prefix for environment variable overrides
	// (CALSTAGE_WORKING_DIR and friends).
	envPrefix = "CALSTAGE"
)

// SettingsDir returns the calstage configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func SettingsDir() (string, error) {
	// Allow tests to override the settings directory
	if settingsDirOverride != "" {
		return settingsDirOverride, nil
	}

	var dir string

	switch runtime.GOOS {
	case platform.Windows:
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(dir, AppName), nil
}

// SettingsPath returns the full path of the settings file.
func SettingsPath() (string, error) {
	if settingsFileOverride != "" {
		return settingsFileOverride, nil
	}
	dir, err := SettingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// Load reads the settings file, applying defaults and CALSTAGE_* environment
// overrides. A missing file is not an error; defaults apply. An unreadable
// or invalid file surfaces an actionable error.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigType("json")

	defaults := DefaultSettings()
	v.SetDefault("working_dir", defaults.WorkingDir)
	v.SetDefault("source_codes", defaults.SourceCodes)
	v.SetDefault("tool.bin", defaults.Tool.Bin)
	v.SetDefault("tool.split_command", defaults.Tool.SplitCommand)
	v.SetDefault("tool.join_command", defaults.Tool.JoinCommand)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}

	if fileExists(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, loadError(path, err)
		}
		readErr := v.ReadConfig(f)
		f.Close()
		if readErr != nil {
			return nil, loadError(path, readErr)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, loadError(path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate settings").
			WithResource(path).
			WithSuggestion("Fix the offending value and retry").
			WithSuggestion("Run 'calstage config show' to inspect the effective settings").
			Wrap(err).
			BuildError()
	}

	return &settings, nil
}

func loadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load settings").
		WithResource(path).
		WithSuggestion("Check that the file contains valid JSON").
		WithSuggestion("Run 'calstage config init' to create a default settings file").
		Wrap(err).
		BuildError()
}

// Save writes settings to the settings file as indented JSON, creating the
// settings directory if needed.
func Save(settings *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// CreateDefaultSettings writes the default settings file if none exists yet.
func CreateDefaultSettings() error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if fileExists(path) {
		return nil
	}

	return Save(DefaultSettings())
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
