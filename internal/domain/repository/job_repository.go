package repository

import (
	"context"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrJobNotFound is returned when a job is not found.
var ErrJobNotFound = errors.New("job not found")

// JobRepository defines the interface for durable job records.
type JobRepository interface {
	// CreateJob persists a new job.
	CreateJob(ctx context.Context, job *entity.NotificationJob) error

	// FindJobByID retrieves a job by its id.
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error)

	// UpdateJob persists the mutable bookkeeping of a job. It never clears a
	// cancellation requested through RequestCancel.
	UpdateJob(ctx context.Context, job *entity.NotificationJob) error

	// RequestCancel flags the job for cooperative cancellation.
	RequestCancel(ctx context.Context, id uuid.UUID) error

	// FindJobsByState lists jobs in any of the states, oldest first.
	FindJobsByState(ctx context.Context, states []entity.JobState, limit, offset int) ([]*entity.NotificationJob, error)

	// CountJobsByState counts jobs in any of the states.
	CountJobsByState(ctx context.Context, states []entity.JobState) (int64, error)
}
