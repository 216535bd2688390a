// Package timeprovider allows the source of the current time to be swapped out, so that timestamps written by the
// loggers can be asserted on in tests.
package timeprovider

import "time"

//go:generate mockery --all --case underscore --inpackage

// TimeProvider returns the current time.
type TimeProvider interface {
	Now() time.Time
}

// CurrentTimeProvider returns the local wall-clock time.
type CurrentTimeProvider struct{}

var (
	_ TimeProvider = (*CurrentTimeProvider)(nil)
	_ TimeProvider = (*FakeTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)

func (tp CurrentTimeProvider) Now() time.Time {
	return time.Now()
}
