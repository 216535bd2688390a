package log

import "fmt"

// WriteError is returned when a line could not be appended to a log file.
type WriteError struct {
	Path string
	Err  error
}

func (w *WriteError) Error() string {
	return fmt.Sprintf("failed to write to log file: %s", w.Err)
}

func (w *WriteError) Unwrap() error {
	return w.Err
}
