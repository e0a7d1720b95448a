// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"syscall"
)

// Win32 system error codes that leave the watcher unrecoverable.
const (
	// ERROR_TOO_MANY_OPEN_FILES (4): process handle limit exceeded.
	errnoTooManyOpenFiles = syscall.Errno(4)
	// ERROR_INVALID_HANDLE (6): the directory handle went stale, usually
	// because the watched working directory was deleted.
	errnoInvalidHandle = syscall.Errno(6)
	// ERROR_NOT_ENOUGH_MEMORY (8): ReadDirectoryChangesW could not
	// allocate its notification buffer.
	errnoNotEnoughMemory = syscall.Errno(8)
)

// isFatalFsnotifyError reports whether an fsnotify error means the watcher
// cannot recover. ReadDirectoryChangesW has no inotify-style watch limits,
// but handle exhaustion, stale handles and memory pressure still end the
// session.
func isFatalFsnotifyError(err error) bool {
	return errors.Is(err, errnoTooManyOpenFiles) ||
		errors.Is(err, errnoInvalidHandle) ||
		errors.Is(err, errnoNotEnoughMemory)
}
