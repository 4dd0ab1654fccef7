// Package queue provides DeliveryQueue drivers.
package queue

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"

	"github.com/google/uuid"
)

type itemState int

const (
	stateQueued itemState = iota
	stateInFlight
)

type item struct {
	job     *entity.NotificationJob
	rank    int
	seq     uint64
	readyAt time.Time
	index   int
}

// readyHeap orders by priority rank, then arrival.
type readyHeap []*item

func (h readyHeap) Len() int { return len(h) }
func (h readyHeap) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank > h[j].rank
	}

	return h[i].seq < h[j].seq
}
func (h readyHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *readyHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// delayHeap orders by visibility time.
type delayHeap []*item

func (h delayHeap) Len() int { return len(h) }
func (h delayHeap) Less(i, j int) bool {
	if !h[i].readyAt.Equal(h[j].readyAt) {
		return h[i].readyAt.Before(h[j].readyAt)
	}

	return h[i].seq < h[j].seq
}
func (h delayHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *delayHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *delayHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// MemoryQueue is an in-process DeliveryQueue. Durability comes from the job
// table: non-terminal jobs are enqueued again at start-up.
type MemoryQueue struct {
	mu      sync.Mutex
	ready   readyHeap
	delayed delayHeap
	known   map[uuid.UUID]itemState
	seq     uint64

	capacity   int
	fullPolicy string

	notify chan struct{}
	space  chan struct{}
	now    func() time.Time
	logger *slog.Logger
}

var _ service.DeliveryQueue = (*MemoryQueue)(nil)

// NewMemoryQueue creates a queue. capacity <= 0 means unbounded.
func NewMemoryQueue(capacity int, fullPolicy string, logger *slog.Logger) *MemoryQueue {
	return &MemoryQueue{
		known:      make(map[uuid.UUID]itemState),
		capacity:   capacity,
		fullPolicy: fullPolicy,
		notify:     make(chan struct{}, 1),
		space:      make(chan struct{}, 1),
		now:        time.Now,
		logger:     logger,
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (q *MemoryQueue) queuedLocked() int {
	return len(q.ready) + len(q.delayed)
}

func (q *MemoryQueue) pushLocked(job *entity.NotificationJob, delay time.Duration) {
	q.seq++
	it := &item{
		job:     job,
		rank:    job.Priority.Rank(),
		seq:     q.seq,
		readyAt: q.now().Add(delay),
	}
	q.known[job.ID] = stateQueued

	if delay > 0 {
		heap.Push(&q.delayed, it)
	} else {
		heap.Push(&q.ready, it)
	}
	signal(q.notify)
}

// Enqueue adds the job. Ids already queued or in flight are ignored.
func (q *MemoryQueue) Enqueue(ctx context.Context, job *entity.NotificationJob) (uuid.UUID, error) {
	for {
		q.mu.Lock()
		if _, ok := q.known[job.ID]; ok {
			q.mu.Unlock()

			return job.ID, nil
		}

		if q.capacity <= 0 || q.queuedLocked() < q.capacity {
			q.pushLocked(job, 0)
			room := q.capacity <= 0 || q.queuedLocked() < q.capacity
			q.mu.Unlock()
			if room {
				signal(q.space)
			}

			return job.ID, nil
		}
		q.mu.Unlock()

		if q.fullPolicy != constants.QueueFullBlock {
			return uuid.Nil, domainerrors.ErrQueueFull
		}

		select {
		case <-ctx.Done():
			return uuid.Nil, ctx.Err()
		case <-q.space:
		}
	}
}

// promoteLocked moves delayed items whose time has come into the ready heap
// and returns the wait until the next delayed item, or 0 when there is none.
func (q *MemoryQueue) promoteLocked() time.Duration {
	now := q.now()
	for len(q.delayed) > 0 {
		next := q.delayed[0]
		if next.readyAt.After(now) {
			return next.readyAt.Sub(now)
		}
		heap.Pop(&q.delayed)
		heap.Push(&q.ready, next)
	}

	return 0
}

// Dequeue blocks until a job is ready or ctx is done.
func (q *MemoryQueue) Dequeue(ctx context.Context) (*entity.NotificationJob, error) {
	for {
		q.mu.Lock()
		wait := q.promoteLocked()
		if len(q.ready) > 0 {
			it := heap.Pop(&q.ready).(*item)
			q.known[it.job.ID] = stateInFlight
			if len(q.ready) > 0 {
				signal(q.notify)
			}
			q.mu.Unlock()
			signal(q.space)

			return it.job, nil
		}
		q.mu.Unlock()

		if wait <= 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-q.notify:
			}

			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, ctx.Err()
		case <-q.notify:
		case <-timer.C:
		}
		timer.Stop()
	}
}

// Ack forgets an in-flight job.
func (q *MemoryQueue) Ack(_ context.Context, jobID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if state, ok := q.known[jobID]; ok && state == stateInFlight {
		delete(q.known, jobID)
	}

	return nil
}

// Requeue makes the job visible again after delay. Capacity does not apply.
func (q *MemoryQueue) Requeue(_ context.Context, job *entity.NotificationJob, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if state, ok := q.known[job.ID]; ok && state == stateQueued {
		return nil
	}

	q.pushLocked(job, delay)

	if q.logger != nil {
		q.logger.Debug("[Queue] Job requeued",
			slog.String("jobID", job.ID.String()),
			slog.Duration("delay", delay),
		)
	}

	return nil
}

// Len returns the number of queued jobs, delayed ones included.
func (q *MemoryQueue) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.queuedLocked(), nil
}
