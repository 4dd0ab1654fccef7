package service

import (
	"context"

	"pushrelay/internal/domain/entity"
)

// PushGateway defines the upstream push provider (e.g. FCM).
// Send performs one call for one token. Failures are returned as
// *errors.TransientDeliveryError or *errors.PermanentDeliveryError.
type PushGateway interface {
	// Send delivers msg to token and returns the provider message id.
	Send(ctx context.Context, token string, msg *entity.Message) (string, error)

	// Name identifies the provider in logs and receipts.
	Name() string
}
