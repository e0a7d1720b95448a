// SPDX-License-Identifier: MPL-2.0

// Package config handles application settings using Viper with JSON as the file format.
//
// Settings are loaded from ~/.config/calstage/config.json (or XDG equivalent on Linux,
// ~/Library/Application Support/calstage/config.json on macOS, %APPDATA%\calstage\config.json
// on Windows), with CALSTAGE_* environment variables overriding individual values.
// The settings own the working directory, the recognized source codes, and the
// split/join tool selection; the core packages receive these as explicit values
// rather than reading ambient state.
package config
