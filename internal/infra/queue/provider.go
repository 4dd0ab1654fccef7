package queue

import (
	"context"
	"log/slog"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/lifecycle"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the DeliveryQueue named by queue.driver.
func New(params Params) (service.DeliveryQueue, error) {
	cfg := params.Config.Queue

	switch cfg.Driver {
	case constants.QueueDriverMemory, "":
		params.Logger.Info("Using in-memory delivery queue",
			slog.Int("capacity", cfg.Capacity),
			slog.String("fullPolicy", cfg.FullPolicy),
		)

		return NewMemoryQueue(cfg.Capacity, cfg.FullPolicy, params.Logger), nil
	case constants.QueueDriverRedis:
		return newRedis(params)
	default:
		return nil, errors.Errorf("unknown queue driver %q", cfg.Driver)
	}
}

func newRedis(params Params) (service.DeliveryQueue, error) {
	cfg := params.Config.Queue

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	q, err := NewRedisQueue(client, RedisQueueOptions{
		Prefix:       cfg.Redis.KeyPrefix,
		Capacity:     cfg.Capacity,
		FullPolicy:   cfg.FullPolicy,
		PollInterval: cfg.PollInterval,
		LeaseTTL:     cfg.Redis.LeaseTTL,
	}, params.Logger)
	if err != nil {
		return nil, err
	}

	keepAliveCtx, stopKeepAlive := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			go q.KeepAlive(keepAliveCtx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			stopKeepAlive()

			if err := q.Release(stopCtx); err != nil {
				params.Logger.Warn("Failed to release queue consumer lease", slog.Any("error", err))
			}

			return client.Close()
		},
	})

	return q, nil
}
