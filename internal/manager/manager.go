package manager

import (
	"context"
	"time"

	"github.com/Goofygiraffe06/barber/internal/config"
	"github.com/Goofygiraffe06/barber/internal/workerpool"
)

// WorkManager keeps blocking SQLite calls and CPU-bound bcrypt work off the
// HTTP goroutines of the development API.
type WorkManager struct {
	db     *workerpool.Pool
	crypto *workerpool.Pool
}

// Option configures the WorkManager.
type Option func(*options)

type options struct {
	dbWorkers     int
	cryptoWorkers int
	queueSize     int
	taskTimeout   time.Duration
}

// WithDBWorkers sets the DB worker count.
func WithDBWorkers(n int) Option { return func(o *options) { o.dbWorkers = n } }

// WithCryptoWorkers sets the crypto worker count.
func WithCryptoWorkers(n int) Option { return func(o *options) { o.cryptoWorkers = n } }

// WithQueueSize sets the shared queue size (per pool).
func WithQueueSize(n int) Option { return func(o *options) { o.queueSize = n } }

// WithTaskTimeout bounds every task.
func WithTaskTimeout(d time.Duration) Option { return func(o *options) { o.taskTimeout = d } }

// NewWorkManager constructs the manager with the given options (or defaults from config).
func NewWorkManager(opts ...Option) *WorkManager {
	o := &options{
		dbWorkers:     config.DBWorkerCount(),
		cryptoWorkers: config.CryptoWorkerCount(),
		queueSize:     config.WorkerQueueSize(),
		taskTimeout:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &WorkManager{
		db:     workerpool.New("db", o.dbWorkers, o.queueSize, o.taskTimeout),
		crypto: workerpool.New("crypto", o.cryptoWorkers, o.queueSize, o.taskTimeout),
	}
}

// Close shuts down all pools.
func (m *WorkManager) Close() {
	if m == nil {
		return
	}
	m.db.Close()
	m.crypto.Close()
}

// RunDB runs fn on the DB pool and waits for it.
func (m *WorkManager) RunDB(ctx context.Context, fn func(ctx context.Context) error) error {
	return run(ctx, m.db, fn)
}

// RunCrypto runs fn on the crypto pool and waits for it.
func (m *WorkManager) RunCrypto(ctx context.Context, fn func(ctx context.Context) error) error {
	return run(ctx, m.crypto, fn)
}

// run submits fn and blocks until it finishes or ctx ends. The task context
// is cancelled when either the pool's task timeout or ctx fires.
func run(ctx context.Context, pool *workerpool.Pool, fn func(ctx context.Context) error) error {
	result := make(chan error, 1)
	err := pool.Submit(func(taskCtx context.Context) {
		merged, cancel := context.WithCancel(taskCtx)
		defer cancel()
		stop := context.AfterFunc(ctx, cancel)
		defer stop()
		result <- fn(merged)
	})
	if err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
