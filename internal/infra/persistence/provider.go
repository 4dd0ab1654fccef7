// Package persistence selects the durable store configured for the service.
package persistence

import (
	"context"
	"log/slog"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/errors"
	"pushrelay/internal/infra/persistence/bolt"
	"pushrelay/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories backed by one store.
type Repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	Devices   repository.DeviceRepository
	Tokens    repository.TokenRepository
	Topics    repository.TopicRepository
	Jobs      repository.JobRepository
	Receipts  repository.ReceiptRepository
}

// New opens the store named by storage.driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverBolt:
		return newBolt(params)
	case constants.StorageDriverPostgres, "":
		return newPostgres(params)
	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}

func newPostgres(params Params) (Repositories, error) {
	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		TxManager: postgres.NewTransactionManager(db),
		Devices:   postgres.NewDeviceRepository(db),
		Tokens:    postgres.NewTokenRepository(db),
		Topics:    postgres.NewTopicRepository(db),
		Jobs:      postgres.NewJobRepository(db),
		Receipts:  postgres.NewReceiptRepository(db),
	}, nil
}

func newBolt(params Params) (Repositories, error) {
	store, err := bolt.Open(params.Config.Storage.BoltPath)
	if err != nil {
		return Repositories{}, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Using bolt storage", slog.String("path", params.Config.Storage.BoltPath))

	return Repositories{
		TxManager: store.TransactionManager(),
		Devices:   store.DeviceRepository(),
		Tokens:    store.TokenRepository(),
		Topics:    store.TopicRepository(),
		Jobs:      store.JobRepository(),
		Receipts:  store.ReceiptRepository(),
	}, nil
}
