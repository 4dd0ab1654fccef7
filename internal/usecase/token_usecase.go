package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"
)

// RegisterTokenInput is the payload of the device client registration call.
type RegisterTokenInput struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// TokenUsecase defines the token store: registration, rotation and invalidation.
type TokenUsecase interface {
	// Register records token as the current token of the device. Re-registering
	// the current token is a no-op; a new token marks older ones stale.
	Register(ctx context.Context, input *RegisterTokenInput) (*entity.Token, error)

	// Invalidate marks the token invalid. Invalid tokens are never reused.
	Invalidate(ctx context.Context, token string) error

	// Lookup returns the deliverable tokens of a device: active ones plus stale
	// ones still inside the grace window. Unknown devices yield an empty slice.
	Lookup(ctx context.Context, deviceID string) ([]*entity.Token, error)

	// LookupMany is Lookup for a set of devices.
	LookupMany(ctx context.Context, deviceIDs []string) ([]*entity.Token, error)
}
