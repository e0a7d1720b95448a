// SPDX-License-Identifier: EPL-2.0

// Package platform provides cross-platform compatibility utilities.
package platform

import "strings"

// Windows is the runtime.GOOS value for Windows, named so call sites read
// as platform.Windows instead of a bare string literal.
const Windows = "windows"

// windowsReservedNames are base filenames that cannot be used on Windows,
// regardless of extension. A source code like CON or AUX would produce an
// unusable staging directory there.
var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// IsWindowsReservedName checks if a filename is a Windows reserved name,
// ignoring case and any extension.
func IsWindowsReservedName(name string) bool {
	upper := strings.ToUpper(name)
	if idx := strings.LastIndex(upper, "."); idx != -1 {
		upper = upper[:idx]
	}
	return windowsReservedNames[upper]
}
