package graph

import (
	"sort"
	"sync"
)

// keyedMutex serializes writes per entity id. Entries are dropped once the
// last holder releases them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[string]*keyedLock{}}
}

func (k *keyedMutex) lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}

// lockPair acquires both keys in sorted order so that two concurrent
// operations on the same edge cannot deadlock.
func (k *keyedMutex) lockPair(a, b string) func() {
	keys := []string{a, b}
	sort.Strings(keys)

	k.lock(keys[0])
	k.lock(keys[1])

	return func() {
		k.unlock(keys[1])
		k.unlock(keys[0])
	}
}
