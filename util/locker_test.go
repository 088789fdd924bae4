package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyLocker(t *testing.T) {
	locker := NewKeyLocker()
	n1 := "share-01"
	n2 := "share-02"

	require.True(t, locker.TryLock(n1))
	require.False(t, locker.TryLock(n1))
	require.False(t, locker.TryRLock(n1))
	require.True(t, locker.TryLock(n2))
	require.Equal(t, 2, locker.Held())
	locker.Unlock(n1)
	locker.Unlock(n2)
	require.Equal(t, 0, locker.Held())

	require.Panics(t, func() {
		locker.Unlock(n1)
	})
	require.Panics(t, func() {
		locker.RUnlock(n1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.True(t, locker.TryRLock(n1))
		}()
	}
	wg.Wait()

	require.False(t, locker.TryLock(n1))
	require.True(t, locker.TryRLock(n1))

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locker.RUnlock(n1)
		}()
	}
	wg.Wait()

	require.Equal(t, 0, locker.Held())
	require.True(t, locker.TryLock(n1))
}

func TestKeyLocker_FailedTryLockLeavesNoEntry(t *testing.T) {
	locker := NewKeyLocker()
	require.True(t, locker.TryRLock("a"))
	require.False(t, locker.TryLock("a"))
	locker.RUnlock("a")
	require.Equal(t, 0, locker.Held())
}
