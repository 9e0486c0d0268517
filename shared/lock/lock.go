// Package lock provides per-key mutual exclusion. Booking writes for a room
// are serialized on the room's key so concurrent reservation attempts cannot
// both pass the availability check.
package lock

import "sync"

// Keyed hands out one mutex per key. Mutexes are created on first use and
// kept for the life of the process; the key space (rooms) is small and
// bounded so entries are never evicted.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyed() *Keyed {
	return &Keyed{
		locks: make(map[string]*sync.Mutex),
	}
}

func (k *Keyed) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}

	return m
}

// Lock acquires the mutex for key, blocking until it is available.
func (k *Keyed) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that is not
// held panics, same as sync.Mutex.
func (k *Keyed) Unlock(key string) {
	k.get(key).Unlock()
}
