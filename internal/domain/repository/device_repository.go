// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device and token persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrTokenNotFound is returned when a token is not found.
	ErrTokenNotFound = errors.New("token not found")
	// ErrDuplicateToken is returned when trying to create a token that already exists.
	ErrDuplicateToken = errors.New("token already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice creates the device or refreshes its platform and last-seen time.
	UpsertDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its client identity.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)
}

// TokenRepository defines the interface for push token persistence.
type TokenRepository interface {
	// CreateToken persists a new token.
	CreateToken(ctx context.Context, token *entity.Token) error

	// FindTokenByValue retrieves a token by its opaque value.
	FindTokenByValue(ctx context.Context, value string) (*entity.Token, error)

	// FindTokensByDevice retrieves every token of a device regardless of status.
	FindTokensByDevice(ctx context.Context, deviceID string) ([]*entity.Token, error)

	// FindTokensByDevices retrieves every token of the given devices.
	FindTokensByDevices(ctx context.Context, deviceIDs []string) ([]*entity.Token, error)

	// UpdateToken persists owner, status and timestamps of an existing token.
	UpdateToken(ctx context.Context, token *entity.Token) error

	// MarkDeviceTokensStale marks every active token of the device except keep as stale.
	MarkDeviceTokensStale(ctx context.Context, deviceID, keep string, at time.Time) (int64, error)
}
