package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/couchbase/tools-logging/fsutil"
	"github.com/couchbase/tools-logging/syncutil"
	"github.com/couchbase/tools-logging/timeprovider"
)

// fileLocks serializes appends to the same file from within this process, regardless of how many loggers target it.
var fileLocks = syncutil.NewKeyedMutex()

// FileLoggerOptions encapsulates the options available when creating a file logger.
type FileLoggerOptions struct {
	// Mode is used when the log file has to be created, defaults to 'fsutil.DefaultFileMode'.
	Mode os.FileMode

	// LockFile indicates whether an advisory OS lock should be held whilst appending, use this when multiple
	// processes write to the same file.
	LockFile bool

	// ErrorWriter receives a diagnostic line whenever a write fails, defaults to 'os.Stderr'.
	ErrorWriter io.Writer

	// TimeProvider supplies the timestamp for each line, defaults to the local wall-clock.
	TimeProvider timeprovider.TimeProvider
}

func (f *FileLoggerOptions) defaults() {
	if f.Mode == 0 {
		f.Mode = fsutil.DefaultFileMode
	}

	if f.ErrorWriter == nil {
		f.ErrorWriter = os.Stderr
	}

	if f.TimeProvider == nil {
		f.TimeProvider = timeprovider.CurrentTimeProvider{}
	}
}

// FileLogger appends timestamped lines to the file at a fixed path. The file is opened and closed for every line, no
// handle is held between calls.
type FileLogger struct {
	path         string
	mode         os.FileMode
	lockFile     bool
	errorWriter  io.Writer
	timeProvider timeprovider.TimeProvider
}

// Path returns the path of the file being appended to.
func (f *FileLogger) Path() string {
	return f.path
}

// Log appends a line for the given message to the file. Failures are reported to the error writer and otherwise
// ignored.
func (f *FileLogger) Log(level Level, message string) {
	err := f.Append(level, message)
	if err == nil {
		return
	}

	fmt.Fprintln(f.errorWriter, err)
}

// Append behaves like 'Log' but returns any failure as a '*WriteError' rather than reporting it.
func (f *FileLogger) Append(level Level, message string) error {
	line := FormatMessage(f.timeProvider.Now(), level, message) + "\n"

	unlock := fileLocks.Lock(lockKey(f.path))
	defer unlock()

	write := fsutil.AppendFile
	if f.lockFile {
		write = fsutil.AppendFileLocked
	}

	err := write(f.path, []byte(line), f.mode)
	if err != nil {
		return &WriteError{Path: f.path, Err: err}
	}

	return nil
}

// lockKey returns the key used to serialize writes to the given path, different spellings of the same path should
// share a key.
func lockKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}
