package util

import (
	"sync"
)

type refCounter struct {
	readers int
	writers int
}

// KeyLocker hands out non-blocking reader/writer locks scoped to a string
// key. Keys with no holders take no memory.
type KeyLocker struct {
	inUse map[string]*refCounter
	mtx   sync.Mutex
}

func NewKeyLocker() *KeyLocker {
	return &KeyLocker{
		inUse: make(map[string]*refCounter),
	}
}

func (l *KeyLocker) TryLock(key string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	rc := l.counter(key)
	if rc.readers > 0 || rc.writers > 0 {
		l.release(key, rc)
		return false
	}
	rc.writers++
	return true
}

func (l *KeyLocker) TryRLock(key string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	rc := l.counter(key)
	if rc.writers > 0 {
		return false
	}
	rc.readers++
	return true
}

func (l *KeyLocker) Unlock(key string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	rc, ok := l.inUse[key]
	if !ok || rc.writers != 1 {
		panic("unlock of unlocked key " + key)
	}
	rc.writers--
	l.release(key, rc)
}

func (l *KeyLocker) RUnlock(key string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	rc, ok := l.inUse[key]
	if !ok || rc.readers < 1 {
		panic("runlock of unlocked key " + key)
	}
	rc.readers--
	l.release(key, rc)
}

// Held returns the number of keys with at least one holder.
func (l *KeyLocker) Held() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.inUse)
}

func (l *KeyLocker) counter(key string) *refCounter {
	rc, ok := l.inUse[key]
	if !ok {
		rc = &refCounter{}
		l.inUse[key] = rc
	}
	return rc
}

func (l *KeyLocker) release(key string, rc *refCounter) {
	if rc.readers == 0 && rc.writers == 0 {
		delete(l.inUse, key)
	}
}
