package main

import (
	"context"
	"log/slog"
	"os"

	"pushrelay/config"
	"pushrelay/internal/delivery"
	"pushrelay/internal/delivery/worker"
	"pushrelay/internal/delivery/worker/handler"
	"pushrelay/internal/domain/constants"
	logs "pushrelay/internal/infra/log"
	"pushrelay/internal/infra/persistence"
	"pushrelay/internal/infra/queue"
	"pushrelay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config     *config.Config
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		queue.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReceiptService,
			impl.NewJobService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	// Jobs submitted here are only seen by the worker pool through a shared queue
	if params.Config.Queue.Driver != constants.QueueDriverRedis {
		params.Logger.Warn("Ingest worker is not using the redis queue; submitted jobs wait for recovery on the next pool start",
			slog.String("driver", params.Config.Queue.Driver),
		)
	}

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
