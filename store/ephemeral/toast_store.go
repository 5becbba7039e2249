package ephemeral

import (
	"time"

	"github.com/Goofygiraffe06/barber/internal/notify"
)

// maxToastsPerKey caps a single browser's pending queue.
const maxToastsPerKey = 8

// ToastStore holds notifications between a submission and the next page view
// of the same browser, keyed by its flash cookie.
type ToastStore struct {
	core *coreStore[[]notify.Toast]
	ttl  time.Duration
}

// NewToastStore returns a store whose queues expire ttl after their last push.
func NewToastStore(ttl time.Duration) *ToastStore {
	return &ToastStore{core: newCoreStore[[]notify.Toast](defaultMaxItems), ttl: ttl}
}

// Push appends a toast to key's queue, dropping the oldest when the queue is full.
func (s *ToastStore) Push(key string, t notify.Toast) error {
	return s.core.update(key, s.ttl, func(queue []notify.Toast) []notify.Toast {
		queue = append(queue, t)
		if len(queue) > maxToastsPerKey {
			queue = queue[len(queue)-maxToastsPerKey:]
		}
		return queue
	})
}

// Pop returns and clears key's pending toasts in push order.
func (s *ToastStore) Pop(key string) []notify.Toast {
	queue, _ := s.core.take(key)
	return queue
}

// Len is the number of keys with pending toasts.
func (s *ToastStore) Len() int { return s.core.size() }

// Close stops the background eviction.
func (s *ToastStore) Close() { s.core.close() }
