package log

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel is returned by 'ParseLevel' when given a name which doesn't match any level.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is used to indicate the severity of a log statement.
type Level uint8

const (
	// LevelDebug includes fine-grained informational events that are the most useful when debugging.
	LevelDebug Level = iota

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the application to continue running.
	LevelError
)

// Color codes are ANSI SGR parameters, wrapped into an escape sequence by 'escape'.
const (
	colorReset  = "0"
	colorRed    = "31"
	colorGreen  = "32"
	colorYellow = "33"
)

// Levels returns every supported level, in order of increasing severity.
func Levels() []Level {
	return []Level{LevelDebug, LevelWarning, LevelError}
}

// String returns the upper case name of the level, as it appears in formatted log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}

	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Color returns the ANSI color code used when printing the level to a terminal.
func (l Level) Color() string {
	switch l {
	case LevelDebug:
		return colorGreen
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorRed
	}

	return colorReset
}

// ParseLevel returns the level with the given (case-insensitive) name.
func ParseLevel(name string) (Level, error) {
	for _, level := range Levels() {
		if strings.EqualFold(name, level.String()) {
			return level, nil
		}
	}

	return 0, fmt.Errorf("%w '%s'", ErrUnknownLevel, name)
}
