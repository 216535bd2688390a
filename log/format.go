package log

import "time"

// TimestampLayout is the layout used to render the local wall-clock time at the start of each line.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatMessage returns the line written by the sinks for the given message, without any color or line terminator
// e.g. "[2024-01-01 12:00:00] ERROR: disk full".
func FormatMessage(now time.Time, level Level, message string) string {
	return "[" + now.Format(TimestampLayout) + "] " + level.String() + ": " + message
}

// escape returns the ANSI escape sequence which selects the given color code.
func escape(code string) string {
	return "\x1b[" + code + "m"
}
