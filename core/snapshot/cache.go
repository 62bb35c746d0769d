package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a loaded snapshot and the time it was built.
type Entry struct {
	// Value is the loaded data.
	Value any

	// Built is the timestamp when this entry was loaded.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (e *Entry) IsExpired() bool {
	if e.TTL <= 0 {
		return true // No caching
	}
	return time.Since(e.Built) > e.TTL
}

// Store holds snapshots keyed by name.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	gen     map[string]uint64
	sf      singleflight.Group
	ttl     time.Duration
}

// New creates a store whose entries live for ttl. A ttl of zero disables
// caching; concurrent loads are still collapsed into one.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		gen:     make(map[string]uint64),
		ttl:     ttl,
	}
}

// GetOrLoad returns the snapshot stored under key, or loads a new one if it
// doesn't exist or has expired. Concurrent callers share a single load.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	// Fast path: check if entry exists and is fresh
	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if exists && !entry.IsExpired() {
		return cast[T](key, entry.Value)
	}

	// Slow path: load using singleflight to prevent stampedes
	result, err, _ := s.sf.Do(key, func() (any, error) {
		s.mu.RLock()
		entry, exists := s.entries[key]
		gen := s.gen[key]
		s.mu.RUnlock()

		if exists && !entry.IsExpired() {
			return entry.Value, nil
		}

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		// Only keep the result if nothing invalidated the key while loading.
		s.mu.Lock()
		if s.gen[key] == gen {
			s.entries[key] = &Entry{Value: value, Built: time.Now(), TTL: s.ttl}
		}
		s.mu.Unlock()

		return value, nil
	})
	if err != nil {
		return zero, err
	}

	return cast[T](key, result)
}

// Invalidate drops the given keys so the next read reloads them.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
		s.gen[key]++
		s.sf.Forget(key)
	}
	s.mu.Unlock()
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.entries {
		if !e.IsExpired() {
			n++
		}
	}
	return n
}

func cast[T any](key string, v any) (T, error) {
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("snapshot %q holds %T, not %T", key, v, zero)
	}
	return typed, nil
}
