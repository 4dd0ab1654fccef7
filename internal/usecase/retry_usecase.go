package usecase

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"
)

// RetryUsecase is the retry and backoff coordinator.
type RetryUsecase interface {
	// Backoff returns the delay before retry number retry (0-based).
	Backoff(retry int) time.Duration

	// Settle decides the outcome of a dispatch round: terminal states are acked,
	// transient failures are requeued until the attempt budget runs out.
	Settle(ctx context.Context, job *entity.NotificationJob, attempts []*entity.DeliveryAttempt) (entity.JobState, error)

	// Retry requeues a job whose round failed before reaching the gateway.
	Retry(ctx context.Context, job *entity.NotificationJob, cause error) (entity.JobState, error)

	// Finish moves the job to a terminal state, acks it and publishes the event.
	Finish(ctx context.Context, job *entity.NotificationJob, state entity.JobState, reason string) error
}
