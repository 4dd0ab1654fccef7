package service

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryQueue buffers notification jobs between producers and the worker pool.
//
// Jobs are served by priority, then arrival. A dequeued job stays in flight
// until Ack or Requeue; jobs in flight when the process dies are delivered again.
type DeliveryQueue interface {
	// Enqueue adds the job and returns its id. Enqueueing an id that is already
	// queued or in flight is a no-op. Returns errors.ErrQueueFull under the
	// reject policy when the queue is at capacity.
	Enqueue(ctx context.Context, job *entity.NotificationJob) (uuid.UUID, error)

	// Dequeue blocks until a job is ready or ctx is done.
	Dequeue(ctx context.Context) (*entity.NotificationJob, error)

	// Ack removes an in-flight job after a terminal outcome.
	Ack(ctx context.Context, jobID uuid.UUID) error

	// Requeue makes an in-flight job visible again after delay.
	Requeue(ctx context.Context, job *entity.NotificationJob, delay time.Duration) error

	// Len returns the number of queued (not in flight) jobs.
	Len(ctx context.Context) (int, error)
}

// QueueRecoverer is implemented by queues shared between processes. Reclaim
// returns jobs left in flight by consumers that stopped renewing their lease
// and reports how many were returned. The worker pool calls it once before
// its workers start.
type QueueRecoverer interface {
	Reclaim(ctx context.Context) (int, error)
}
