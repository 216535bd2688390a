package log

import (
	"io"
	"os"

	"github.com/couchbase/tools-logging/timeprovider"
)

// ConsoleLoggerOptions encapsulates the options available when creating a console logger.
type ConsoleLoggerOptions struct {
	// Writer is where colored lines are written, defaults to 'os.Stdout'.
	Writer io.Writer

	// TimeProvider supplies the timestamp for each line, defaults to the local wall-clock.
	TimeProvider timeprovider.TimeProvider
}

func (c *ConsoleLoggerOptions) defaults() {
	if c.Writer == nil {
		c.Writer = os.Stdout
	}

	if c.TimeProvider == nil {
		c.TimeProvider = timeprovider.CurrentTimeProvider{}
	}
}

// ConsoleLogger writes timestamped lines to the terminal, wrapped in the color for the level.
type ConsoleLogger struct {
	writer       io.Writer
	timeProvider timeprovider.TimeProvider
}

// Log writes a single colored line for the given message.
//
// NOTE: Errors from the underlying writer are ignored, standard output is assumed to always be writable.
func (c *ConsoleLogger) Log(level Level, message string) {
	line := escape(level.Color()) + FormatMessage(c.timeProvider.Now(), level, message) + escape(colorReset) + "\n"

	// Write the whole line at once so that concurrent callers don't split each others lines.
	_, _ = io.WriteString(c.writer, line)
}
