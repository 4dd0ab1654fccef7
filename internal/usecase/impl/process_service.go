package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/usecase"

	"github.com/pkg/errors"
)

type processService struct {
	jobRepo    repository.JobRepository
	queue      service.DeliveryQueue
	dispatcher usecase.DispatchUsecase
	retry      usecase.RetryUsecase
	now        func() time.Time
	logger     *slog.Logger
}

// NewProcessService creates the use case that drives one dequeued job.
func NewProcessService(
	jobRepo repository.JobRepository,
	queue service.DeliveryQueue,
	dispatcher usecase.DispatchUsecase,
	retry usecase.RetryUsecase,
	logger *slog.Logger,
) usecase.ProcessUsecase {
	return &processService{
		jobRepo:    jobRepo,
		queue:      queue,
		dispatcher: dispatcher,
		retry:      retry,
		now:        time.Now,
		logger:     logger,
	}
}

// Process reloads the job from the durable store, runs one dispatch round and
// settles the outcome. The queued copy is only a handle; the stored record wins.
func (s *processService) Process(ctx context.Context, queued *entity.NotificationJob) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	job, err := s.jobRepo.FindJobByID(ctx, queued.ID)
	if errors.Is(err, repository.ErrJobNotFound) {
		logger.Warn("[Process] Dropping unknown job", slog.String("jobID", queued.ID.String()))

		return s.queue.Ack(ctx, queued.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	if job.State.IsTerminal() {
		return s.queue.Ack(ctx, job.ID)
	}

	if job.CancelRequested {
		return s.retry.Finish(ctx, job, entity.JobCancelled, "cancelled")
	}

	job.State = entity.JobInFlight
	job.Attempts++
	job.NextAttemptAt = nil
	job.UpdatedAt = s.now()
	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return fmt.Errorf("failed to mark job in flight: %w", err)
	}

	attempts, err := s.dispatcher.Dispatch(ctx, job)
	if err != nil {
		logger.Warn("[Process] Dispatch round failed",
			slog.Int("attempts", job.Attempts),
			slog.Any("error", err),
		)
		if _, retryErr := s.retry.Retry(ctx, job, err); retryErr != nil {
			return fmt.Errorf("failed to schedule retry: %w", retryErr)
		}

		return nil
	}

	state, err := s.retry.Settle(ctx, job, attempts)
	if err != nil {
		return fmt.Errorf("failed to settle job: %w", err)
	}

	logger.Debug("[Process] Job round settled",
		slog.String("state", string(state)),
	)

	return nil
}
