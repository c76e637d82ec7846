// Package locks provides cross-connection mutual exclusion on top of
// PostgreSQL advisory locks.
//
// Locks are keyed by (namespace, id). Lock blocks on pg_advisory_lock,
// so concurrent acquisitions — from other processes or other goroutines
// in this one — serialise in some order up to the timeout. Re-entrant
// acquisition within one call chain is a bug, not contention: Lock
// returns a derived context recording the held key, and a nested Lock
// on that context fails immediately with ErrReentrant instead of
// deadlocking against its own session. TryLock additionally skips keys
// held anywhere in this process, which is what lets the reaper sweep
// alongside hook handlers without queueing behind them.
package locks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Namespace partitions the 64-bit advisory lock keyspace.
type Namespace int32

const (
	// NamespaceAgent serialises all mutation for one agent.
	NamespaceAgent Namespace = 1
)

var (
	// ErrLockTimeout is returned when Lock cannot acquire within its timeout.
	ErrLockTimeout = errors.New("advisory lock acquisition timed out")

	// ErrReentrant is returned when Lock is called on a key already held
	// by this call chain.
	ErrReentrant = errors.New("advisory lock already held by this call chain")
)

type lockKey struct {
	ns Namespace
	id int64
}

type heldCtxKey struct{}

// heldSet is the per-call-chain record of acquired keys. Derived
// contexts share the parent's entries and add their own.
type heldSet map[lockKey]struct{}

func chainHolds(ctx context.Context, key lockKey) bool {
	held, _ := ctx.Value(heldCtxKey{}).(heldSet)
	_, ok := held[key]
	return ok
}

func withChainHeld(ctx context.Context, key lockKey) context.Context {
	prev, _ := ctx.Value(heldCtxKey{}).(heldSet)
	next := make(heldSet, len(prev)+1)
	for k := range prev {
		next[k] = struct{}{}
	}
	next[key] = struct{}{}
	return context.WithValue(ctx, heldCtxKey{}, next)
}

// Manager acquires and releases advisory locks. Each acquisition checks
// out a dedicated connection so the lock never interacts with the
// transaction scope of the protected work.
type Manager struct {
	db *sql.DB

	mu   sync.Mutex
	held map[lockKey]int
}

// NewManager creates a lock manager over the given connection pool.
func NewManager(db *sql.DB) *Manager {
	return &Manager{
		db:   db,
		held: make(map[lockKey]int),
	}
}

// Lock blocks until the (ns, id) lock is acquired or timeout elapses.
// On success it returns a context carrying the held key — work done
// under the lock should run on it, so a nested Lock on the same key
// fails fast instead of deadlocking — and a release function that must
// be called exactly once; it is safe to call from a defer and is
// idempotent.
func (m *Manager) Lock(ctx context.Context, ns Namespace, id int64, timeout time.Duration) (context.Context, func(), error) {
	key := lockKey{ns: ns, id: id}

	if chainHolds(ctx, key) {
		return nil, nil, fmt.Errorf("lock (%d, %d): %w", ns, id, ErrReentrant)
	}

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := m.db.Conn(lockCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, fmt.Errorf("lock (%d, %d): %w", ns, id, ErrLockTimeout)
		}
		return nil, nil, fmt.Errorf("failed to check out lock connection: %w", err)
	}

	_, err = conn.ExecContext(lockCtx, "SELECT pg_advisory_lock($1, $2)", int32(ns), id)
	if err != nil {
		_ = conn.Close()
		if lockCtx.Err() != nil {
			return nil, nil, fmt.Errorf("lock (%d, %d): %w", ns, id, ErrLockTimeout)
		}
		return nil, nil, fmt.Errorf("pg_advisory_lock failed: %w", err)
	}

	m.retain(key)
	return withChainHeld(ctx, key), m.releaser(key, conn), nil
}

// TryLock attempts the (ns, id) lock without blocking. It returns a
// release function and true on success. A key held anywhere in this
// process yields false immediately; connection errors are logged and
// yield false (best-effort non-blocking).
func (m *Manager) TryLock(ctx context.Context, ns Namespace, id int64) (func(), bool) {
	key := lockKey{ns: ns, id: id}

	if chainHolds(ctx, key) {
		return nil, false
	}
	if !m.reserve(key) {
		return nil, false
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		m.release(key)
		slog.Warn("TryLock connection checkout failed", "ns", ns, "id", id, "error", err)
		return nil, false
	}

	var acquired bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1, $2)", int32(ns), id).Scan(&acquired)
	if err != nil {
		_ = conn.Close()
		m.release(key)
		slog.Warn("pg_try_advisory_lock failed", "ns", ns, "id", id, "error", err)
		return nil, false
	}
	if !acquired {
		_ = conn.Close()
		m.release(key)
		return nil, false
	}

	return m.releaser(key, conn), true
}

// Held reports whether this process currently holds the (ns, id) lock.
func (m *Manager) Held(ns Namespace, id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[lockKey{ns: ns, id: id}] > 0
}

// releaser builds the scoped release closure. Release always runs all
// three steps: advisory unlock, connection return, held-set removal. The
// unlock uses a background context so a cancelled request context cannot
// leak the lock; closing the connection releases the session-scoped lock
// server-side even if the unlock statement itself failed.
func (m *Manager) releaser(key lockKey, conn *sql.Conn) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if _, err := conn.ExecContext(ctx,
				"SELECT pg_advisory_unlock($1, $2)", int32(key.ns), key.id); err != nil {
				slog.Warn("pg_advisory_unlock failed, relying on connection close",
					"ns", key.ns, "id", key.id, "error", err)
			}
			if err := conn.Close(); err != nil {
				slog.Warn("lock connection close failed", "ns", key.ns, "id", key.id, "error", err)
			}
			m.release(key)
		})
	}
}

// retain records an acquisition in the process-wide held set. The count
// absorbs the transient overlap between a TryLock reservation losing the
// race and a blocking Lock winning it.
func (m *Manager) retain(key lockKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held[key]++
}

// reserve is the TryLock gate: it retains the key only when nothing in
// this process holds it.
func (m *Manager) reserve(key lockKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[key] > 0 {
		return false
	}
	m.held[key]++
	return true
}

func (m *Manager) release(key lockKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[key] <= 1 {
		delete(m.held, key)
		return
	}
	m.held[key]--
}
