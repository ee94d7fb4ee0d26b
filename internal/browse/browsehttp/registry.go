package browsehttp

import (
	"sync"
	"time"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

// Registry keeps one browser per console session, created lazily from
// the dataset factory and dropped after the idle TTL. Each session
// gets its own collection copy, matching the one-UI-session model of
// the engine.
type Registry[T browse.Record] struct {
	mu      sync.Mutex
	ttl     time.Duration
	factory func() *browse.Browser[T]
	now     func() time.Time
	entries map[string]*sessionEntry[T]
}

type sessionEntry[T browse.Record] struct {
	browser  *browse.Browser[T]
	lastSeen time.Time
}

// NewRegistry builds a registry. A non-positive ttl disables
// sweeping.
func NewRegistry[T browse.Record](factory func() *browse.Browser[T], ttl time.Duration) *Registry[T] {
	return &Registry[T]{
		ttl:     ttl,
		factory: factory,
		now:     time.Now,
		entries: make(map[string]*sessionEntry[T]),
	}
}

// Get returns the session's browser, creating it on first use.
func (r *Registry[T]) Get(sessionID string) *browse.Browser[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &sessionEntry[T]{browser: r.factory()}
		r.entries[sessionID] = entry
	}
	entry.lastSeen = r.now()
	return entry.browser
}

// Sweep drops sessions idle for longer than the TTL and reports how
// many were removed.
func (r *Registry[T]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
