package log

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

	require.Equal(t, "[2024-01-01 12:00:00] ERROR: disk full", FormatMessage(now, LevelError, "disk full"))
}

func TestFormatMessageZeroPadded(t *testing.T) {
	now := time.Date(2024, 3, 7, 5, 4, 9, 999_999_999, time.Local)

	require.Equal(t, "[2024-03-07 05:04:09] DEBUG: ", FormatMessage(now, LevelDebug, ""))
}

func TestFormatMessageTwentyFourHour(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)

	require.Equal(t, "[2024-12-31 23:59:59] WARNING: a: b", FormatMessage(now, LevelWarning, "a: b"))
}

func TestFormatMessageTimestampPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] DEBUG: message$`)

	require.Regexp(t, pattern, FormatMessage(time.Now(), LevelDebug, "message"))
}
