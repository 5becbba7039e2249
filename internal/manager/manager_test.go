package manager_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/internal/workerpool"
)

func newManager(t *testing.T) *manager.WorkManager {
	t.Helper()
	m := manager.NewWorkManager(
		manager.WithDBWorkers(1),
		manager.WithCryptoWorkers(1),
		manager.WithQueueSize(4),
		manager.WithTaskTimeout(time.Second),
	)
	t.Cleanup(m.Close)
	return m
}

func TestRunReturnsResult(t *testing.T) {
	m := newManager(t)
	want := errors.New("db failed")

	if err := m.RunDB(context.Background(), func(context.Context) error { return want }); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
	if err := m.RunCrypto(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRunHonoursCallerContext(t *testing.T) {
	m := newManager(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	sawCancel := make(chan struct{})
	err := m.RunDB(ctx, func(taskCtx context.Context) error {
		<-taskCtx.Done()
		close(sawCancel)
		return taskCtx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	select {
	case <-sawCancel:
	case <-time.After(2 * time.Second):
		t.Fatal("task context did not observe caller cancellation")
	}
}

func TestRunAfterClose(t *testing.T) {
	m := manager.NewWorkManager(manager.WithDBWorkers(1), manager.WithCryptoWorkers(1))
	m.Close()

	err := m.RunDB(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, workerpool.ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}
