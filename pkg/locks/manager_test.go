package locks_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/pkg/locks"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestLock_AcquireAndRelease(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())
	ctx := context.Background()

	_, release, err := m.Lock(ctx, locks.NamespaceAgent, 42, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, m.Held(locks.NamespaceAgent, 42))

	release()
	assert.False(t, m.Held(locks.NamespaceAgent, 42))

	// Release is idempotent.
	release()
}

func TestLock_ReentrantChainRejected(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())

	lockedCtx, release, err := m.Lock(context.Background(), locks.NamespaceAgent, 7, 5*time.Second)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, _, err = m.Lock(lockedCtx, locks.NamespaceAgent, 7, 5*time.Second)
	assert.ErrorIs(t, err, locks.ErrReentrant)
	assert.Less(t, time.Since(start), time.Second, "re-entry in one call chain fails fast, not after the timeout")

	// A different key on the same chain is fine.
	_, other, err := m.Lock(lockedCtx, locks.NamespaceAgent, 8, 5*time.Second)
	require.NoError(t, err)
	other()
}

func TestLock_ConcurrentGoroutinesSerialize(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())
	ctx := context.Background()

	// Two independent handlers contending on one agent key must queue,
	// not error: the second waits out the first and then acquires.
	_, release, err := m.Lock(ctx, locks.NamespaceAgent, 1, 5*time.Second)
	require.NoError(t, err)

	secondAcquired := make(chan error, 1)
	go func() {
		_, r2, err := m.Lock(ctx, locks.NamespaceAgent, 1, 10*time.Second)
		if err == nil {
			r2()
		}
		secondAcquired <- err
	}()

	// Give the second goroutine time to block on pg_advisory_lock.
	select {
	case err := <-secondAcquired:
		t.Fatalf("second acquisition returned while the key was held: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	release()

	select {
	case err := <-secondAcquired:
		require.NoError(t, err, "the waiting goroutine acquires once the holder releases")
	case <-time.After(5 * time.Second):
		t.Fatal("second acquisition never completed after release")
	}
}

func TestLock_ManyWritersOneKey(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())
	ctx := context.Background()

	var mu sync.Mutex
	inSection := 0
	maxInSection := 0

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, release, err := m.Lock(ctx, locks.NamespaceAgent, 99, 10*time.Second)
			if err != nil {
				t.Errorf("lock failed: %v", err)
				return
			}
			defer release()

			mu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inSection--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInSection, "the critical section admits one goroutine at a time")
}

func TestTryLock_HeldKeyYieldsFalse(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())
	ctx := context.Background()

	release, ok := m.TryLock(ctx, locks.NamespaceAgent, 9)
	require.True(t, ok)
	defer release()

	_, ok = m.TryLock(ctx, locks.NamespaceAgent, 9)
	assert.False(t, ok)

	// Another id in the same namespace is independent.
	other, ok := m.TryLock(ctx, locks.NamespaceAgent, 10)
	require.True(t, ok)
	other()
}

func TestTryLock_SkipsKeyHeldByBlockingLock(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := locks.NewManager(db.DB())
	ctx := context.Background()

	_, release, err := m.Lock(ctx, locks.NamespaceAgent, 11, 5*time.Second)
	require.NoError(t, err)

	_, ok := m.TryLock(ctx, locks.NamespaceAgent, 11)
	assert.False(t, ok, "a sweep skips agents a handler is working on")

	release()

	got, ok := m.TryLock(ctx, locks.NamespaceAgent, 11)
	require.True(t, ok)
	got()
}

func TestTryLock_CrossManagerContention(t *testing.T) {
	db := testdb.NewTestClient(t)
	// Two managers over the same pool model the server and watcher
	// processes sharing one database.
	first := locks.NewManager(db.DB())
	second := locks.NewManager(db.DB())
	ctx := context.Background()

	release, ok := first.TryLock(ctx, locks.NamespaceAgent, 5)
	require.True(t, ok)

	_, ok = second.TryLock(ctx, locks.NamespaceAgent, 5)
	assert.False(t, ok, "the advisory lock excludes other sessions, not just this process")

	release()

	got, ok := second.TryLock(ctx, locks.NamespaceAgent, 5)
	require.True(t, ok, "release frees the key for other sessions")
	got()
}

func TestLock_TimeoutAgainstForeignHolder(t *testing.T) {
	db := testdb.NewTestClient(t)
	holder := locks.NewManager(db.DB())
	waiter := locks.NewManager(db.DB())
	ctx := context.Background()

	_, release, err := holder.Lock(ctx, locks.NamespaceAgent, 77, 5*time.Second)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, _, err = waiter.Lock(ctx, locks.NamespaceAgent, 77, 300*time.Millisecond)
	assert.ErrorIs(t, err, locks.ErrLockTimeout)
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.False(t, waiter.Held(locks.NamespaceAgent, 77), "a failed acquisition leaves no held-set residue")
}
