package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileExists returns a boolean indicating whether a file at the provided path exists.
func FileExists(path string) (bool, error) {
	stats, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if stats.IsDir() {
		return false, ErrNotFile
	}

	return true, nil
}

// AppendFile appends the provided data to the file at the given path, creating it if it doesn't exist. The file is
// opened and closed within the call, no handle is retained.
//
// NOTE: If a zero value file mode is supplied, the default will be used.
func AppendFile(path string, data []byte, mode os.FileMode) error {
	return appendFile(path, data, mode, false)
}

// AppendFileLocked behaves like 'AppendFile' but holds an exclusive advisory lock on the file whilst writing, this
// allows multiple processes appending to the same file to coordinate.
func AppendFileLocked(path string, data []byte, mode os.FileMode) error {
	return appendFile(path, data, mode, true)
}

func appendFile(path string, data []byte, mode os.FileMode, lock bool) (err error) {
	if mode == 0 {
		mode = DefaultFileMode
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, mode)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
	}()

	if lock {
		unlock, lockErr := LockFile(file)
		if lockErr != nil {
			return fmt.Errorf("failed to lock file: %w", lockErr)
		}

		defer unlock() //nolint:errcheck
	}

	_, err = file.Write(data)

	return err
}
