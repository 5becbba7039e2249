package ephemeral

import (
	"errors"
	"sync"
	"time"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/utils"
)

var (
	ErrTooLong   = errors.New("key too long")
	ErrStoreFull = errors.New("ephemeral store full")
)

const (
	maxKeyLength    = 255
	defaultMaxItems = 10_000
	cleanupInterval = time.Minute
)

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// coreStore is a bounded map whose entries expire. A background goroutine
// evicts expired entries until close is called.
type coreStore[V any] struct {
	data     map[string]*item[V]
	mu       sync.RWMutex
	maxItems int
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func newCoreStore[V any](maxItems int) *coreStore[V] {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	store := &coreStore[V]{
		data:     make(map[string]*item[V]),
		maxItems: maxItems,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go store.cleanup(cleanupInterval)
	return store
}

// update applies fn to the live value under key (zero value when absent or
// expired) and stores the result with a fresh ttl.
func (s *coreStore[V]) update(key string, ttl time.Duration, fn func(V) V) error {
	if len(key) > maxKeyLength {
		logging.DebugLog("Store set failed: key too long [%s] (length: %d)", utils.HashKey(key), len(key))
		return ErrTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var current V
	it, ok := s.data[key]
	if ok && now.Before(it.expiresAt) {
		current = it.value
	} else if len(s.data) >= s.maxItems {
		logging.WarnLog("Store set failed: store full (size: %d)", len(s.data))
		return ErrStoreFull
	}

	s.data[key] = &item[V]{
		value:     fn(current),
		expiresAt: now.Add(ttl),
	}
	return nil
}

// take removes and returns the live value under key.
func (s *coreStore[V]) take(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	it, ok := s.data[key]
	if !ok {
		return zero, false
	}
	delete(s.data, key)

	if !s.now().Before(it.expiresAt) {
		return zero, false
	}
	return it.value, true
}

func (s *coreStore[V]) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *coreStore[V]) evictExpired() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for k, v := range s.data {
		if !now.Before(v.expiresAt) {
			delete(s.data, k)
			expired++
		}
	}
	return expired
}

func (s *coreStore[V]) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.evictExpired(); n > 0 {
				logging.DebugLog("Store cleanup: removed %d expired items (current size: %d)", n, s.size())
			}
		}
	}
}

func (s *coreStore[V]) close() {
	s.stopOnce.Do(func() { close(s.stop) })
}
