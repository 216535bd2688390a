// Package log provides a small logging interface with two interchangeable sinks; a colored console logger and an
// append-only file logger.
package log

//go:generate mockgen -destination=mocks/mock_logger.go -package=mocks github.com/couchbase/tools-logging/log Logger

// Logger is implemented by every sink. Calls to 'Log' never fail from the callers point of view; any errors are
// handled by the sink itself.
type Logger interface {
	Log(level Level, message string)
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*FileLogger)(nil)
	_ Logger = nopLogger{}
)
