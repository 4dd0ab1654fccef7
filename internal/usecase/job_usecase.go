package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitJobInput is a notification job request from a producer.
type SubmitJobInput struct {
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data"`
	TargetKind string            `json:"target_kind" validate:"required,oneof=device topic"`
	Target     string            `json:"target" validate:"required,max=255"`
	Priority   string            `json:"priority" validate:"omitempty,oneof=high normal low"`
	RequestID  string            `json:"request_id"`
}

// JobUsecase is the producer-facing side of the delivery pipeline.
type JobUsecase interface {
	// Submit persists and enqueues a job and returns its id immediately.
	Submit(ctx context.Context, input *SubmitJobInput) (uuid.UUID, error)

	// Status returns the aggregate receipt status of a job.
	Status(ctx context.Context, jobID uuid.UUID) (*entity.JobStatus, error)

	// Cancel requests cooperative cancellation of a non-terminal job.
	Cancel(ctx context.Context, jobID uuid.UUID) (*entity.NotificationJob, error)

	// Recover enqueues every non-terminal job again after a restart.
	Recover(ctx context.Context) (int, error)
}
