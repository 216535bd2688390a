//go:build !unix && !windows

package fsutil

import "os"

// LockFile is a fallback function which will be run if no OS specific function exists; in this case no lock is
// taken.
func LockFile(_ *os.File) (func() error, error) {
	return func() error { return nil }, nil
}
