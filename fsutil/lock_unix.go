//go:build unix

package fsutil

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// LockFile takes an exclusive advisory lock on the given file, blocking until it's available. The returned function
// releases the lock; closing the file also releases it.
func LockFile(file *os.File) (func() error, error) {
	fd := int(file.Fd())

	for {
		err := unix.Flock(fd, unix.LOCK_EX)
		if errors.Is(err, unix.EINTR) {
			continue
		}

		if err != nil {
			return nil, err
		}

		break
	}

	return func() error { return unix.Flock(fd, unix.LOCK_UN) }, nil
}
