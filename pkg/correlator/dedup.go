package correlator

import (
	"sync"
	"time"
)

// hashRing is the application-level dedup layer: a bounded set of
// recently seen content hashes per agent. The storage-level partial
// unique index is the backstop for anything that slips through.
type hashRing struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu    sync.Mutex
	seen  map[int]map[string]time.Time // agentID -> hash -> first seen
	order map[int][]string
}

func newHashRing(ttl time.Duration, max int) *hashRing {
	if max <= 0 {
		max = 512
	}
	return &hashRing{
		ttl:   ttl,
		max:   max,
		now:   time.Now,
		seen:  make(map[int]map[string]time.Time),
		order: make(map[int][]string),
	}
}

// Seen reports whether the hash was recorded within the TTL. It never
// records: a hash enters the ring only via Record, after the turn is
// durably committed, so a failed transaction cannot poison a later
// redelivery of the same content.
func (r *hashRing) Seen(agentID int, hash string) bool {
	if hash == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	at, ok := r.seen[agentID][hash]
	return ok && r.now().Sub(at) < r.ttl
}

// Record remembers the hash for the TTL window.
func (r *hashRing) Record(agentID int, hash string) {
	if hash == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	hashes, ok := r.seen[agentID]
	if !ok {
		hashes = make(map[string]time.Time)
		r.seen[agentID] = hashes
	}

	hashes[hash] = r.now()
	r.order[agentID] = append(r.order[agentID], hash)
	for len(r.order[agentID]) > r.max {
		oldest := r.order[agentID][0]
		r.order[agentID] = r.order[agentID][1:]
		if oldest != hash {
			delete(hashes, oldest)
		}
	}
}

// Forget drops an agent's ring, for session end.
func (r *hashRing) Forget(agentID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.seen, agentID)
	delete(r.order, agentID)
}
