package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/platform/resilience"
)

// Recorder receives hit/miss notifications, keyed by the store name.
type Recorder interface {
	CacheHit(store string)
	CacheMiss(store string)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. A zero TTL keeps entries forever.
type Store[V any] struct {
	name     string
	mu       sync.RWMutex
	entries  map[string]entry[V]
	ttl      time.Duration
	flight   resilience.Group[V]
	recorder Recorder
	now      func() time.Time
}

func NewStore[V any](name string, ttl time.Duration, recorder Recorder) *Store[V] {
	return &Store[V]{
		name:     name,
		entries:  make(map[string]entry[V]),
		ttl:      ttl,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store[V]) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value or runs loader once for all
// concurrent callers of the same key. Failed loads are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		s.hit()
		return value, nil
	}
	s.miss()

	return s.flightLoad(ctx, key, loader)
}

func (s *Store[V]) flightLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	value, err, _ := s.flight.Do(key, func() (V, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			var zero V
			return zero, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	return value, err
}

func (s *Store[V]) hit() {
	if s.recorder != nil {
		s.recorder.CacheHit(s.name)
	}
}

func (s *Store[V]) miss() {
	if s.recorder != nil {
		s.recorder.CacheMiss(s.name)
	}
}
