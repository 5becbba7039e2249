package controller_test

import (
	"sync"
	"testing"

	"github.com/Goofygiraffe06/barber/internal/controller"
)

func TestInFlightAcquireRelease(t *testing.T) {
	f := controller.NewInFlight()

	release, ok := f.Acquire("client-a")
	if !ok {
		t.Fatal("expected first acquire to succeed")
	}
	if _, ok := f.Acquire("client-a"); ok {
		t.Error("expected second acquire for same key to fail")
	}
	other, ok := f.Acquire("client-b")
	if !ok {
		t.Error("expected other key to be independent")
	}
	if f.Count() != 2 {
		t.Errorf("expected 2 active, got %d", f.Count())
	}

	release()
	release() // idempotent
	other()

	if f.Count() != 0 {
		t.Errorf("expected 0 active, got %d", f.Count())
	}
	if _, ok := f.Acquire("client-a"); !ok {
		t.Error("expected acquire after release to succeed")
	}
}

func TestInFlightConcurrent(t *testing.T) {
	f := controller.NewInFlight()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	start := make(chan struct{})
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := f.Acquire("same"); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
}
