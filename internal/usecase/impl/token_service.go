// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pushrelay/config"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/usecase"
	"pushrelay/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager  repository.TransactionManager
	tokenRepo  repository.TokenRepository
	staleGrace time.Duration
	locks      *util.KeyedMutex
	now        func() time.Time
	logger     *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenRepo repository.TokenRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	var staleGrace time.Duration
	if params.Config != nil {
		staleGrace = params.Config.Token.StaleGrace
	}

	return &tokenService{
		txManager:  params.TxManager,
		tokenRepo:  params.TokenRepo,
		staleGrace: staleGrace,
		locks:      util.NewKeyedMutex(),
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register records the token as the current token of the device.
func (srv *tokenService) Register(ctx context.Context, input *usecase.RegisterTokenInput) (*entity.Token, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	value := strings.TrimSpace(input.Token)
	if deviceID == "" || value == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device id and token are required")
	}

	unlock := srv.locks.Lock(deviceID)
	defer unlock()

	now := srv.now()
	var registered *entity.Token

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		tokenRepo := repoFactory.NewTokenRepository()

		device := &entity.Device{
			ID:         deviceID,
			Platform:   input.Platform,
			LastSeenAt: now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := deviceRepo.UpsertDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to upsert device")
		}

		existing, err := tokenRepo.FindTokenByValue(ctx, value)
		switch {
		case errors.Is(err, repository.ErrTokenNotFound):
			registered = &entity.Token{
				Value:     value,
				DeviceID:  deviceID,
				Status:    entity.TokenActive,
				IssuedAt:  now,
				UpdatedAt: now,
			}
			if err := tokenRepo.CreateToken(ctx, registered); err != nil {
				return errors.Wrap(err, "failed to create token")
			}
		case err != nil:
			return errors.Wrap(err, "failed to find token")
		case existing.Status == entity.TokenInvalid:
			return domainerrors.ErrTokenInvalidated
		case existing.DeviceID == deviceID && existing.Status == entity.TokenActive:
			registered = existing

			return nil
		default:
			previousOwner := existing.DeviceID
			existing.DeviceID = deviceID
			existing.Status = entity.TokenActive
			existing.StaleAt = nil
			existing.IssuedAt = now
			existing.UpdatedAt = now
			if err := tokenRepo.UpdateToken(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to reactivate token")
			}
			if previousOwner != deviceID {
				srv.log(ctx).Info("[TokenStore] Token moved to another device",
					slog.String("token", util.TokenPrefix(value)),
					slog.String("from", previousOwner),
					slog.String("to", deviceID),
				)
			}
			registered = existing
		}

		staled, err := tokenRepo.MarkDeviceTokensStale(ctx, deviceID, value, now)
		if err != nil {
			return errors.Wrap(err, "failed to mark previous tokens stale")
		}
		if staled > 0 {
			srv.log(ctx).Info("[TokenStore] Previous tokens marked stale",
				slog.String("deviceID", deviceID),
				slog.Int64("count", staled),
			)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenInvalidated) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to register token",
			slog.String("deviceID", deviceID),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("failed to register token: %w", err)
	}

	return registered, nil
}

// Invalidate marks the token invalid. Invalidating twice is a no-op.
func (srv *tokenService) Invalidate(ctx context.Context, value string) error {
	token, err := srv.tokenRepo.FindTokenByValue(ctx, value)
	if errors.Is(err, repository.ErrTokenNotFound) {
		return domainerrors.ErrTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find token: %w", err)
	}

	unlock := srv.locks.Lock(token.DeviceID)
	defer unlock()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		current, err := tokenRepo.FindTokenByValue(ctx, value)
		if err != nil {
			return errors.Wrap(err, "failed to reload token")
		}
		if current.Status == entity.TokenInvalid {
			return nil
		}
		current.MarkInvalid(srv.now())

		return tokenRepo.UpdateToken(ctx, current)
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate token: %w", err)
	}

	srv.log(ctx).Info("[TokenStore] Token invalidated",
		slog.String("deviceID", token.DeviceID),
		slog.String("token", util.TokenPrefix(value)),
	)

	return nil
}

// Lookup returns the deliverable tokens of a device.
func (srv *tokenService) Lookup(ctx context.Context, deviceID string) ([]*entity.Token, error) {
	tokens, err := srv.tokenRepo.FindTokensByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tokens by device: %w", err)
	}

	return srv.deliverable(tokens), nil
}

// LookupMany returns the deliverable tokens of every given device.
func (srv *tokenService) LookupMany(ctx context.Context, deviceIDs []string) ([]*entity.Token, error) {
	if len(deviceIDs) == 0 {
		return []*entity.Token{}, nil
	}

	tokens, err := srv.tokenRepo.FindTokensByDevices(ctx, deviceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find tokens by devices: %w", err)
	}

	return srv.deliverable(tokens), nil
}

func (srv *tokenService) deliverable(tokens []*entity.Token) []*entity.Token {
	now := srv.now()
	result := make([]*entity.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Deliverable(now, srv.staleGrace) {
			result = append(result, token)
		}
	}

	return result
}
