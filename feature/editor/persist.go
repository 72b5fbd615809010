package editor

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrQueueClosed is returned when work is submitted after shutdown.
	ErrQueueClosed = errors.New("persist queue closed")
	// ErrQueueFull is returned when the floor's worker has no buffer left.
	ErrQueueFull = errors.New("persist queue full")
)

const (
	persistTimeout = 10 * time.Second
	persistBuffer  = 64
)

type persistJob struct {
	floorID string
	op      string
	run     func(ctx context.Context) error
	onError func(err error)
}

// persistQueue runs persistence calls in the background. Jobs of the same
// floor always land on the same worker so they are applied in order.
type persistQueue struct {
	mu     sync.RWMutex
	closed bool
	queues []chan persistJob
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

func newPersistQueue(workers int, logger *zap.Logger) *persistQueue {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	q := &persistQueue{
		queues: make([]chan persistJob, workers),
		group:  group,
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
	for i := range q.queues {
		ch := make(chan persistJob, persistBuffer)
		q.queues[i] = ch
		group.Go(func() error {
			q.work(ch)
			return nil
		})
	}
	return q
}

func (q *persistQueue) work(ch <-chan persistJob) {
	for job := range ch {
		ctx, cancel := context.WithTimeout(q.ctx, persistTimeout)
		err := job.run(ctx)
		cancel()
		if err == nil {
			continue
		}
		q.logger.Error("Persist failed",
			zap.String("floor_id", job.floorID),
			zap.String("op", job.op),
			zap.Error(err),
		)
		if job.onError != nil {
			job.onError(err)
		}
	}
}

// Submit enqueues a job without blocking. A saturated worker rejects the
// job with ErrQueueFull.
func (q *persistQueue) Submit(job persistJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	h := fnv.New32a()
	h.Write([]byte(job.floorID))
	select {
	case q.queues[h.Sum32()%uint32(len(q.queues))] <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for the queued ones to finish.
// When ctx expires first, running jobs are cancelled.
func (q *persistQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for _, ch := range q.queues {
		close(ch)
	}
	q.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- q.group.Wait() }()

	select {
	case err := <-done:
		q.cancel()
		return err
	case <-ctx.Done():
		q.cancel()
		<-done
		return ctx.Err()
	}
}
