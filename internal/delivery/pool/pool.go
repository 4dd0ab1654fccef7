// Package pool is the delivery worker pool: a fixed set of goroutines that
// pull jobs off the delivery queue and run them through the pipeline.
package pool

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pushrelay/config"
	"pushrelay/internal/delivery"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/usecase"

	"go.uber.org/fx"
)

// dequeueErrorBackoff spaces out Dequeue calls while the queue backend is failing.
const dequeueErrorBackoff = time.Second

type workerPool struct {
	cfg       *config.Config
	logger    *slog.Logger
	queue     service.DeliveryQueue
	jobUC     usecase.JobUsecase
	processUC usecase.ProcessUsecase

	mu         sync.Mutex
	stopPull   context.CancelFunc
	stopWork   context.CancelFunc
	stopped    bool
	wg         sync.WaitGroup
	workersRun chan struct{}
}

// PoolParams holds dependencies for the worker pool, injected by Fx.
type PoolParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Queue     service.DeliveryQueue
	JobUC     usecase.JobUsecase
	ProcessUC usecase.ProcessUsecase
}

// NewPool creates the worker pool delivery.
func NewPool(params PoolParams) (delivery.Delivery, error) {
	p := &workerPool{
		cfg:        params.Cfg,
		logger:     params.Logger,
		queue:      params.Queue,
		jobUC:      params.JobUC,
		processUC:  params.ProcessUC,
		workersRun: make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p, nil
}

// Serve reclaims abandoned queue entries and recovers unfinished jobs, then
// runs the workers until stop is called.
func (p *workerPool) Serve(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()

		return nil
	}
	// Workers stop pulling on pullCtx; in-flight attempts run on workCtx,
	// which is only cancelled once the shutdown grace runs out.
	pullCtx, stopPull := context.WithCancel(ctx)
	workCtx, stopWork := context.WithCancel(context.WithoutCancel(ctx))
	p.stopPull = stopPull
	p.stopWork = stopWork
	p.mu.Unlock()

	if recoverer, ok := p.queue.(service.QueueRecoverer); ok {
		reclaimed, err := recoverer.Reclaim(pullCtx)
		if err != nil {
			p.logger.Error("[Pool] Failed to reclaim abandoned jobs", slog.Any("error", err))
		} else if reclaimed > 0 {
			p.logger.Info("[Pool] Reclaimed abandoned jobs", slog.Int("reclaimed", reclaimed))
		}
	}

	recovered, err := p.jobUC.Recover(pullCtx)
	if err != nil {
		p.logger.Error("[Pool] Failed to recover unfinished jobs",
			slog.Int("recovered", recovered),
			slog.Any("error", err),
		)
	} else if recovered > 0 {
		p.logger.Info("[Pool] Recovered unfinished jobs", slog.Int("recovered", recovered))
	}

	workers := p.cfg.Dispatch.Workers
	p.logger.Info("[Pool] Starting delivery workers", slog.Int("workers", workers))

	for i := range workers {
		p.wg.Go(func() {
			p.run(pullCtx, workCtx, i)
		})
	}
	close(p.workersRun)

	p.wg.Wait()
	p.logger.Info("[Pool] Delivery workers stopped")

	return nil
}

func (p *workerPool) run(pullCtx, workCtx context.Context, worker int) {
	logger := p.logger.With(slog.Int("worker", worker))

	for {
		job, err := p.queue.Dequeue(pullCtx)
		if err != nil {
			if pullCtx.Err() != nil {
				return
			}

			logger.Error("[Pool] Failed to dequeue job", slog.Any("error", err))

			select {
			case <-pullCtx.Done():
				return
			case <-time.After(dequeueErrorBackoff):
			}

			continue
		}

		p.process(workCtx, logger, job)
	}
}

func (p *workerPool) process(ctx context.Context, logger *slog.Logger, job *entity.NotificationJob) {
	ctx, jobLogger := deliverycontext.WithJob(ctx, logger, job.ID, job.RequestID)

	if err := p.processUC.Process(ctx, job); err != nil {
		jobLogger.Error("[Pool] Failed to process job", slog.Any("error", err))

		// The job is still in flight; make it visible again so it is not
		// stranded until the next restart.
		if ctx.Err() != nil {
			return
		}
		if requeueErr := p.queue.Requeue(ctx, job, p.cfg.Retry.Base); requeueErr != nil {
			jobLogger.Error("[Pool] Failed to requeue job", slog.Any("error", requeueErr))
		}
	}
}

// stop stops pulling new jobs and waits up to the shutdown grace for
// in-flight attempts before cancelling them.
func (p *workerPool) stop(ctx context.Context) error {
	p.mu.Lock()
	p.stopped = true
	stopPull, stopWork := p.stopPull, p.stopWork
	p.mu.Unlock()

	if stopPull == nil {
		return nil
	}

	p.logger.Info("[Pool] Shutting down delivery workers",
		slog.Duration("grace", p.cfg.Dispatch.ShutdownGrace),
	)

	stopPull()

	select {
	case <-p.workersRun:
	case <-ctx.Done():
		stopWork()

		return ctx.Err()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	grace := time.NewTimer(p.cfg.Dispatch.ShutdownGrace)
	defer grace.Stop()

	select {
	case <-done:
		stopWork()

		return nil
	case <-grace.C:
		p.logger.Warn("[Pool] Shutdown grace elapsed, cancelling in-flight jobs")
		stopWork()
	case <-ctx.Done():
		stopWork()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
