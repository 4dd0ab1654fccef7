package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"
)

// DispatchUsecase is the fan-out dispatcher.
type DispatchUsecase interface {
	// Dispatch resolves the recipient tokens of job, sends one upstream request
	// per token and records every attempt before returning.
	Dispatch(ctx context.Context, job *entity.NotificationJob) ([]*entity.DeliveryAttempt, error)
}

// ProcessUsecase runs one dequeued job through dispatch and settlement.
type ProcessUsecase interface {
	Process(ctx context.Context, job *entity.NotificationJob) error
}
