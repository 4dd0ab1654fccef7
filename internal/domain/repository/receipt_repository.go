package repository

import (
	"context"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// ReceiptRepository defines the interface for delivery attempt records.
type ReceiptRepository interface {
	// CreateAttempt appends a delivery attempt record.
	CreateAttempt(ctx context.Context, attempt *entity.DeliveryAttempt) error

	// FindAttemptsByJob returns every attempt of a job in creation order.
	FindAttemptsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.DeliveryAttempt, error)

	// HasAttemptInState reports whether the (job, token) pair has an attempt in state.
	HasAttemptInState(ctx context.Context, jobID uuid.UUID, token string, state entity.AttemptState) (bool, error)
}
