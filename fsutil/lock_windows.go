//go:build windows

package fsutil

import (
	"math"
	"os"

	"golang.org/x/sys/windows"
)

// LockFile takes an exclusive lock over the whole of the given file, blocking until it's available. The returned
// function releases the lock.
func LockFile(file *os.File) (func() error, error) {
	var (
		handle     = windows.Handle(file.Fd())
		overlapped = new(windows.Overlapped)
	)

	err := windows.LockFileEx(handle, windows.LOCKFILE_EXCLUSIVE_LOCK, 0, math.MaxUint32, math.MaxUint32, overlapped)
	if err != nil {
		return nil, err
	}

	return func() error { return windows.UnlockFileEx(handle, 0, math.MaxUint32, math.MaxUint32, overlapped) }, nil
}
