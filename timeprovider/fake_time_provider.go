package timeprovider

import (
	"sync"
	"time"
)

// FakeTimeProvider implements 'TimeProvider' returning a fixed time which may be advanced manually.
type FakeTimeProvider struct {
	lock sync.Mutex
	time time.Time
}

func NewFakeTimeProvider(start time.Time) *FakeTimeProvider {
	return &FakeTimeProvider{time: start}
}

func (f *FakeTimeProvider) Now() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.time
}

// AdvanceTimeTo sets the time to 't'.
func (f *FakeTimeProvider) AdvanceTimeTo(t time.Time) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.time = t
}

// AdvanceTimeBy advances the time by 'd'.
func (f *FakeTimeProvider) AdvanceTimeBy(d time.Duration) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.time = f.time.Add(d)
}
