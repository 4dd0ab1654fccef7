package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pushrelay/config"
	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	mockRepo "pushrelay/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Token.StaleGrace = time.Hour
	cfg.Retry.Base = time.Second
	cfg.Retry.Cap = 8 * time.Second
	cfg.Retry.MaxAttempts = 5
	cfg.Dispatch.CallTimeout = time.Second
	cfg.Dispatch.FanoutConcurrency = 4
	cfg.Notification.DefaultTitle = "XUMA'A"
	cfg.Notification.DefaultBody = "Nueva notificación"
	cfg.Notification.AndroidChannelID = "xuma_channel"

	return cfg
}

func newTestJob(kind entity.TargetKind, target string) *entity.NotificationJob {
	return &entity.NotificationJob{
		ID:        uuid.New(),
		Payload:   entity.Payload{Title: "hello", Body: "world"},
		Target:    entity.Target{Kind: kind, Value: target},
		Priority:  entity.PriorityNormal,
		State:     entity.JobPending,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func newActiveToken(deviceID, value string) *entity.Token {
	return &entity.Token{
		Value:     value,
		DeviceID:  deviceID,
		Status:    entity.TokenActive,
		IssuedAt:  fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}

// expectTransaction makes txManager run fn against a factory handing out the given repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, deviceRepo repository.DeviceRepository, tokenRepo repository.TokenRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if deviceRepo != nil {
				factory.EXPECT().NewDeviceRepository().Return(deviceRepo).Maybe()
			}
			if tokenRepo != nil {
				factory.EXPECT().NewTokenRepository().Return(tokenRepo).Maybe()
			}

			return fn(factory)
		})
}
