package log

import "fmt"

// WrappedLogger embeds a Logger and defines printf style methods for each level.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a WrappedLogger for the given Logger. If logger is nil then the nopLogger is used.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Warnf logs the provided information at the warning level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.Log(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.Log(LevelError, fmt.Sprintf(format, args...))
}
