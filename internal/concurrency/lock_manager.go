package concurrency

import (
	"slices"
	"sync"
)

// LockManager hands out one mutex per key. Keys are never evicted; callers
// keep the key space bounded (item ids, a few fixed names).
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires every key and returns the function that releases them.
// Keys are taken in sorted order with duplicates collapsed, so two callers
// locking overlapping sets cannot deadlock.
func (lm *LockManager) Lock(keys ...string) (unlock func()) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, key := range ordered {
		m := lm.GetLock(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
