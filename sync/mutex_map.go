// Package sync provides advanced synchronization tools.
package sync

import (
	"sync"
)

// MutexMap allows to obtain a mutex lock that is scoped to a given key.
// I.e. only one goroutine at a time can hold the lock for the same key, while locks for different keys are independent.
//
// An example use case is a service that handles requests concurrently, but at most one request that modifies the same item should be processed at a time.
// To achieve this, the service shares a single MutexMap across all request goroutines and obtains the lock for the item (e.g. using the item id as the key)
// before doing any work.
//
// Example usage:
//
//	mm := NewMutexMap[string]()
//	l := mm.Lock("exampleKey")
//	// prefer to call Unlock() with defer right after locking, to make sure the lock gets unlocked eventually
//	defer l.Unlock()
//
// Careful: nested locks, i.e. trying to obtain a lock for key x while already holding the lock for key y can lead to deadlocks.
//
// Implementation based on answer https://stackoverflow.com/a/62562831 to https://stackoverflow.com/questions/40931373/how-to-gc-a-map-of-mutexes-in-go .
type MutexMap[K comparable] struct {
	lock      sync.Mutex
	keyToLock map[K]*keyMutex[K]
}

func NewMutexMap[K comparable]() *MutexMap[K] {
	return &MutexMap[K]{keyToLock: make(map[K]*keyMutex[K])}
}

type keyMutex[K comparable] struct {
	key K
	// the MutexMap this mutex belongs to
	mm *MutexMap[K]
	// number of goroutines having/waiting for this lock
	// when count reaches 0 we can delete this keyMutex from MutexMap to avoid MutexMap growing endlessly
	count int
	inner sync.Mutex
}

func (km *keyMutex[K]) Unlock() {
	km.mm.unlock(km.key)
	km.inner.Unlock()
}

type Unlocker interface {
	Unlock()
}

// Obtain the lock for the given key.
// If the lock is already held by another goroutine, this function blocks until the lock is released.
// The calling goroutine can use the returned Unlocker to unlock the given key when done.
func (mm *MutexMap[K]) Lock(key K) Unlocker {
	// obtain the global lock of this MutexMap, only one goroutine should read/modify the map that contains the mutexes
	mm.lock.Lock()
	km, ok := mm.keyToLock[key]
	if !ok {
		km = &keyMutex[K]{key: key, mm: mm, count: 0}
		mm.keyToLock[key] = km
	}
	km.count++
	// the global lock must be released before waiting for the key lock, otherwise no other goroutine could lock another key in the meantime
	mm.lock.Unlock()
	km.inner.Lock()
	return km
}

// WithLock runs fn while holding the lock for the given key and returns the result of fn.
func WithLock[K comparable, T any](mm *MutexMap[K], key K, fn func() T) T {
	l := mm.Lock(key)
	defer l.Unlock()
	return fn()
}

// Returns the number of keys that are currently locked or waited for.
func (mm *MutexMap[K]) Len() int {
	mm.lock.Lock()
	defer mm.lock.Unlock()
	return len(mm.keyToLock)
}

func (mm *MutexMap[K]) unlock(key K) {
	mm.lock.Lock()
	defer mm.lock.Unlock()
	km, ok := mm.keyToLock[key]
	if !ok {
		// this shouldn't happen, since this function is only called from within keyMutex.Unlock()
		panic("no lock for the given key")
	}
	km.count--
	if km.count == 0 {
		delete(mm.keyToLock, key)
	}
}
