package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSameKey(t *testing.T) {
	mu := NewKeyedMutex()

	unlock := mu.Lock("a")
	require.Nil(t, mu.TryLock("a"))

	unlock()

	unlock = mu.TryLock("a")
	require.NotNil(t, unlock)
	unlock()
}

func TestKeyedMutexDifferentKeys(t *testing.T) {
	mu := NewKeyedMutex()

	unlockA := mu.Lock("a")
	defer unlockA()

	unlockB := mu.TryLock("b")
	require.NotNil(t, unlockB)
	unlockB()
}

func TestKeyedMutexExclusive(t *testing.T) {
	var (
		mu      = NewKeyedMutex()
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 64; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unlock := mu.Lock("key")
			defer unlock()

			counter++
		}()
	}

	wg.Wait()

	require.Equal(t, 64, counter)
}
