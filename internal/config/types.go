// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"calstage/internal/catalog"
)

var (
	// ErrInvalidToolSettings is the sentinel error wrapped by InvalidToolSettingsError.
	ErrInvalidToolSettings = errors.New("invalid tool settings")
)

type (
	// Settings is the persisted calstage configuration. The recognized
	// source codes and the tool location live here, not in the core
	// packages; the core receives them as explicit values.
	Settings struct {
		// WorkingDir is the directory holding the <CODE>.txt exports and
		// the staging directories.
		WorkingDir string `mapstructure:"working_dir" json:"working_dir"`

		// SourceCodes are the recognized 3-character codes, in the order
		// they should be processed and listed.
		SourceCodes []string `mapstructure:"source_codes" json:"source_codes"`

		// Tool configures how the external split/join capability is invoked.
		Tool ToolSettings `mapstructure:"tool" json:"tool"`

		// UI holds presentation preferences.
		UI UISettings `mapstructure:"ui" json:"ui"`
	}

	// ToolSettings selects the split/join tool. When both shell command
	// templates are set they take precedence over the plain binary.
	ToolSettings struct {
		// Bin is the tool executable, resolved via PATH when not absolute.
		Bin string `mapstructure:"bin" json:"bin"`

		// SplitCommand is an optional shell template for the split
		// operation, run in the embedded interpreter with
		// $CALSTAGE_SOURCE and $CALSTAGE_DESTINATION bound.
		SplitCommand string `mapstructure:"split_command" json:"split_command,omitempty"`

		// JoinCommand is the matching template for the join operation.
		JoinCommand string `mapstructure:"join_command" json:"join_command,omitempty"`
	}

	// UISettings holds presentation preferences.
	UISettings struct {
		Verbose bool `mapstructure:"verbose" json:"verbose"`
	}

	// InvalidToolSettingsError is returned when the tool settings are
	// internally inconsistent. It wraps ErrInvalidToolSettings for
	// errors.Is() compatibility.
	InvalidToolSettingsError struct {
		Reason string
	}
)

// Error returns the error message for InvalidToolSettingsError.
func (e *InvalidToolSettingsError) Error() string {
	return fmt.Sprintf("invalid tool settings: %s", e.Reason)
}

// Unwrap returns ErrInvalidToolSettings for errors.Is() checks.
func (e *InvalidToolSettingsError) Unwrap() error {
	return ErrInvalidToolSettings
}

// DefaultSettings returns the built-in defaults used when no settings file
// exists.
func DefaultSettings() *Settings {
	return &Settings{
		WorkingDir:  ".",
		SourceCodes: []string{},
		Tool: ToolSettings{
			Bin: "splitjoin",
		},
		UI: UISettings{
			Verbose: false,
		},
	}
}

// Codes parses and normalizes the configured source codes. The first
// invalid code aborts with a catalog.InvalidSourceCodeError.
func (s *Settings) Codes() ([]catalog.SourceCode, error) {
	return catalog.ParseSourceCodes(s.SourceCodes)
}

// Validate checks cross-field constraints that the JSON shape cannot
// express: syntactically valid source codes and a usable tool selection.
func (s *Settings) Validate() error {
	if _, err := s.Codes(); err != nil {
		return err
	}

	hasSplit := strings.TrimSpace(s.Tool.SplitCommand) != ""
	hasJoin := strings.TrimSpace(s.Tool.JoinCommand) != ""
	if hasSplit != hasJoin {
		return &InvalidToolSettingsError{
			Reason: "split_command and join_command must be configured together",
		}
	}
	if !hasSplit && strings.TrimSpace(s.Tool.Bin) == "" {
		return &InvalidToolSettingsError{
			Reason: "either tool.bin or both shell command templates must be set",
		}
	}

	return nil
}

// UsesShellTool reports whether the shell command templates are configured,
// taking precedence over the plain binary.
func (s *Settings) UsesShellTool() bool {
	return strings.TrimSpace(s.Tool.SplitCommand) != "" && strings.TrimSpace(s.Tool.JoinCommand) != ""
}
