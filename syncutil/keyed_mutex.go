package syncutil

import "sync"

// KeyedMutex provides mutual exclusion per key, callers locking different keys don't block each other.
//
// NOTE: Keys are never removed, this is only suitable for a small bounded set of keys e.g. file paths.
type KeyedMutex struct {
	lock  sync.Mutex
	slots map[string]chan struct{}
}

// NewKeyedMutex creates a new keyed mutex with no keys locked.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]chan struct{})}
}

// Lock blocks until exclusive access to the given key is acquired, the returned function must be called to release
// it.
func (k *KeyedMutex) Lock(key string) func() {
	slot := k.slot(key)

	slot <- struct{}{}

	return func() { <-slot }
}

// TryLock attempts to acquire the given key without blocking, returning a nil function if it's already held.
func (k *KeyedMutex) TryLock(key string) func() {
	slot := k.slot(key)

	select {
	case slot <- struct{}{}:
		return func() { <-slot }
	default:
		return nil
	}
}

func (k *KeyedMutex) slot(key string) chan struct{} {
	k.lock.Lock()
	defer k.lock.Unlock()

	slot, ok := k.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		k.slots[key] = slot
	}

	return slot
}
