package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// unfinishedStates are the job states resumed by Recover.
var unfinishedStates = []entity.JobState{entity.JobPending, entity.JobInFlight, entity.JobRetrying}

type jobService struct {
	jobRepo  repository.JobRepository
	queue    service.DeliveryQueue
	receipts usecase.ReceiptUsecase
	now      func() time.Time
	logger   *slog.Logger
}

// NewJobService creates the producer-facing job use case.
func NewJobService(
	jobRepo repository.JobRepository,
	queue service.DeliveryQueue,
	receipts usecase.ReceiptUsecase,
	logger *slog.Logger,
) usecase.JobUsecase {
	return &jobService{
		jobRepo:  jobRepo,
		queue:    queue,
		receipts: receipts,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Submit persists the job as pending and enqueues it. A rejected enqueue
// leaves the job failed so it never looks pending forever.
func (s *jobService) Submit(ctx context.Context, input *usecase.SubmitJobInput) (uuid.UUID, error) {
	kind := entity.TargetKind(input.TargetKind)
	target := strings.TrimSpace(input.Target)
	if (kind != entity.TargetDevice && kind != entity.TargetTopic) || target == "" {
		return uuid.Nil, domainerrors.ErrInvalidTarget
	}

	payload := entity.Payload{
		Title: input.Title,
		Body:  input.Body,
		Data:  input.Data,
	}
	if err := validatePayload(payload); err != nil {
		return uuid.Nil, err
	}

	requestID := input.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	now := s.now()
	job := &entity.NotificationJob{
		ID:        uuid.New(),
		Payload:   payload,
		Target:    entity.Target{Kind: kind, Value: target},
		Priority:  entity.ParsePriority(input.Priority),
		State:     entity.JobPending,
		RequestID: requestID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, job); err != nil {
		job.State = entity.JobFailed
		job.LastError = "rejected: " + enqueueFailureReason(err)
		job.UpdatedAt = s.now()
		if updateErr := s.jobRepo.UpdateJob(context.WithoutCancel(ctx), job); updateErr != nil {
			s.log(ctx).Error("Failed to mark rejected job failed",
				slog.String("jobID", job.ID.String()),
				slog.Any("error", updateErr),
			)
		}

		return uuid.Nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	s.log(ctx).Info("Job submitted",
		slog.String("jobID", job.ID.String()),
		slog.String("target", string(kind)+":"+target),
		slog.String("priority", string(job.Priority)),
	)

	return job.ID, nil
}

// Status returns the aggregate receipt status of a job.
func (s *jobService) Status(ctx context.Context, jobID uuid.UUID) (*entity.JobStatus, error) {
	return s.receipts.Status(ctx, jobID)
}

// Cancel flags the job; the worker that next handles it stops retrying.
func (s *jobService) Cancel(ctx context.Context, jobID uuid.UUID) (*entity.NotificationJob, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return nil, domainerrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	if job.State.IsTerminal() {
		return nil, domainerrors.ErrJobAlreadyTerminal.WithDetails(string(job.State))
	}

	if err := s.jobRepo.RequestCancel(ctx, jobID); err != nil {
		return nil, fmt.Errorf("failed to request cancellation: %w", err)
	}
	job.CancelRequested = true

	s.log(ctx).Info("Job cancellation requested", slog.String("jobID", jobID.String()))

	return job, nil
}

// Recover enqueues every unfinished job again. Retrying jobs keep their
// remaining backoff.
func (s *jobService) Recover(ctx context.Context) (int, error) {
	jobs, err := s.jobRepo.FindJobsByState(ctx, unfinishedStates, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to find unfinished jobs: %w", err)
	}

	now := s.now()
	recovered := 0
	for _, job := range jobs {
		if job.State == entity.JobRetrying && job.NextAttemptAt != nil && job.NextAttemptAt.After(now) {
			err = s.queue.Requeue(ctx, job, job.NextAttemptAt.Sub(now))
		} else {
			_, err = s.queue.Enqueue(ctx, job)
		}
		if err != nil {
			return recovered, fmt.Errorf("failed to re-enqueue job %s: %w", job.ID, err)
		}
		recovered++
	}

	if recovered > 0 {
		s.logger.Info("Recovered unfinished jobs", slog.Int("count", recovered))
	}

	return recovered, nil
}

func enqueueFailureReason(err error) string {
	if domainerrors.IsQueueFull(err) {
		return "queue full"
	}

	return err.Error()
}
