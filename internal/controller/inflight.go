package controller

import (
	"sync"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/utils"
)

// InFlight tracks which clients have a form submission outstanding so a
// double click or a replayed POST does not reach the API twice.
type InFlight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{
		active: make(map[string]struct{}),
	}
}

// Acquire marks key busy. It returns false when key already is; otherwise the
// returned release func must be called once the submission finishes.
func (f *InFlight) Acquire(key string) (release func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.active[key]; busy {
		logging.DebugLog("InFlight: rejected concurrent submission [%s]", utils.HashKey(key))
		return nil, false
	}
	f.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.active, key)
			f.mu.Unlock()
		})
	}, true
}

// Count returns the current number of outstanding submissions.
func (f *InFlight) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active)
}
