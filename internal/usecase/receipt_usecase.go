package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceiptUsecase is the delivery receipt tracker.
type ReceiptUsecase interface {
	// Record appends an attempt outcome.
	Record(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// Status aggregates the attempts of a job into a per-recipient breakdown.
	Status(ctx context.Context, jobID uuid.UUID) (*entity.JobStatus, error)

	// AlreadySettled reports whether token already has a delivered or
	// permanently failed attempt for the job. Settled tokens are not sent again.
	AlreadySettled(ctx context.Context, jobID uuid.UUID, token string) (bool, error)
}
