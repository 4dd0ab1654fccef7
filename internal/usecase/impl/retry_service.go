package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"pushrelay/config"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultRetryBase        = time.Second
	defaultRetryCap         = 5 * time.Minute
	defaultRetryMaxAttempts = 5

	reasonNoRecipients    = "no recipients"
	reasonNoDeliverable   = "no deliverable tokens"
	reasonAttemptsExhaust = "retry budget exhausted"
)

// retryService implements the RetryUsecase interface.
type retryService struct {
	jobRepo      repository.JobRepository
	queue        service.DeliveryQueue
	receipts     usecase.ReceiptUsecase
	publisher    service.EventPublisher
	base         time.Duration
	cap          time.Duration
	maxAttempts  int
	jitterFactor float64
	jitter       func() float64
	now          func() time.Time
	logger       *slog.Logger
}

// RetryServiceParams holds dependencies for RetryService, injected by Fx.
type RetryServiceParams struct {
	fx.In

	JobRepo   repository.JobRepository
	Queue     service.DeliveryQueue
	Receipts  usecase.ReceiptUsecase
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRetryService is the constructor for retryService.
func NewRetryService(params RetryServiceParams) usecase.RetryUsecase {
	srv := &retryService{
		jobRepo:     params.JobRepo,
		queue:       params.Queue,
		receipts:    params.Receipts,
		publisher:   params.Publisher,
		base:        defaultRetryBase,
		cap:         defaultRetryCap,
		maxAttempts: defaultRetryMaxAttempts,
		jitter:      rand.Float64,
		now:         time.Now,
		logger:      params.Logger,
	}

	if params.Config != nil {
		retryCfg := params.Config.Retry
		if retryCfg.Base > 0 {
			srv.base = retryCfg.Base
		}
		if retryCfg.Cap > 0 {
			srv.cap = retryCfg.Cap
		}
		if retryCfg.MaxAttempts > 0 {
			srv.maxAttempts = retryCfg.MaxAttempts
		}
		srv.jitterFactor = min(max(retryCfg.JitterFactor, 0), 1)
	}
	if srv.cap < srv.base {
		srv.cap = srv.base
	}

	return srv
}

// Backoff returns min(base*2^retry, cap) plus jitter. The jittered delay never
// drops below the un-jittered one nor exceeds the cap, and with a jitter factor
// of at most 1 it never exceeds the next un-jittered delay either, so delays
// are non-decreasing across retries.
func (srv *retryService) Backoff(retry int) time.Duration {
	delay := srv.base
	for i := 0; i < retry && delay < srv.cap; i++ {
		delay *= 2
	}
	if delay > srv.cap {
		delay = srv.cap
	}

	if srv.jitterFactor > 0 && srv.jitter != nil {
		delay += time.Duration(srv.jitter() * srv.jitterFactor * float64(delay))
		if delay > srv.cap {
			delay = srv.cap
		}
	}

	return delay
}

// Settle decides the job outcome after a dispatch round.
func (srv *retryService) Settle(ctx context.Context, job *entity.NotificationJob, attempts []*entity.DeliveryAttempt) (entity.JobState, error) {
	var (
		transient, permanent *entity.DeliveryAttempt
		retryAfter           time.Duration
	)
	for _, attempt := range attempts {
		switch attempt.State {
		case entity.AttemptTransientFailure:
			transient = attempt
			retryAfter = max(retryAfter, attempt.RetryAfter)
		case entity.AttemptPermanentFailure:
			permanent = attempt
		}
	}

	status, err := srv.receipts.Status(ctx, job.ID)
	if err != nil {
		return job.State, fmt.Errorf("failed to load receipts: %w", err)
	}

	if job.Target.Kind == entity.TargetDevice && status.Delivered > 0 {
		return entity.JobDelivered, srv.Finish(ctx, job, entity.JobDelivered, "")
	}

	if transient != nil {
		cause := domainerrors.NewTransientDeliveryError(transient.Reason, nil)
		cause.RetryAfter = retryAfter

		return srv.Retry(ctx, job, cause)
	}

	switch {
	case status.Delivered > 0:
		return entity.JobDelivered, srv.Finish(ctx, job, entity.JobDelivered, "")
	case len(status.Recipients) == 0 && job.Target.Kind == entity.TargetTopic:
		return entity.JobFailed, srv.Finish(ctx, job, entity.JobFailed, reasonNoRecipients)
	case len(status.Recipients) == 0:
		return entity.JobFailed, srv.Finish(ctx, job, entity.JobFailed, reasonNoDeliverable)
	default:
		reason := reasonNoDeliverable
		if permanent != nil {
			reason = permanent.Reason
		}

		return entity.JobFailed, srv.Finish(ctx, job, entity.JobFailed, reason)
	}
}

// Retry requeues the job with backoff, or dead-letters it once the attempt
// budget is spent. A cancellation requested meanwhile ends the job instead.
// A Retry-After carried by cause raises the delay, still bounded by the cap.
func (srv *retryService) Retry(ctx context.Context, job *entity.NotificationJob, cause error) (entity.JobState, error) {
	reason := domainerrors.FailureReason(cause)

	if job.Attempts >= srv.maxAttempts {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("[Retry] Job dead-lettered",
			slog.String("jobID", job.ID.String()),
			slog.Int("attempts", job.Attempts),
			slog.String("reason", reason),
		)

		return entity.JobDeadLetter, srv.Finish(ctx, job, entity.JobDeadLetter, fmt.Sprintf("%s: %s", reasonAttemptsExhaust, reason))
	}

	current, err := srv.jobRepo.FindJobByID(ctx, job.ID)
	if err != nil {
		return job.State, fmt.Errorf("failed to reload job: %w", err)
	}
	if current.CancelRequested {
		return entity.JobCancelled, srv.Finish(ctx, job, entity.JobCancelled, "cancelled")
	}

	delay := srv.Backoff(job.Attempts - 1)
	if floor := min(domainerrors.RetryAfter(cause), srv.cap); floor > delay {
		delay = floor
	}
	next := srv.now().Add(delay)
	job.State = entity.JobRetrying
	job.NextAttemptAt = &next
	job.LastError = reason
	job.UpdatedAt = srv.now()

	if err := srv.jobRepo.UpdateJob(ctx, job); err != nil {
		return job.State, fmt.Errorf("failed to update job: %w", err)
	}
	if err := srv.queue.Requeue(ctx, job, delay); err != nil {
		return job.State, fmt.Errorf("failed to requeue job: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("[Retry] Job scheduled for retry",
		slog.String("jobID", job.ID.String()),
		slog.Int("attempts", job.Attempts),
		slog.Duration("delay", delay),
		slog.String("reason", reason),
	)

	return entity.JobRetrying, nil
}

// Finish moves the job to a terminal state, acks it and publishes a JobEvent.
func (srv *retryService) Finish(ctx context.Context, job *entity.NotificationJob, state entity.JobState, reason string) error {
	job.State = state
	job.NextAttemptAt = nil
	if reason != "" {
		job.LastError = reason
	}
	job.UpdatedAt = srv.now()

	if err := srv.jobRepo.UpdateJob(ctx, job); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if err := srv.queue.Ack(ctx, job.ID); err != nil {
		return fmt.Errorf("failed to ack job: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("[Retry] Job finished",
		slog.String("jobID", job.ID.String()),
		slog.String("state", string(state)),
		slog.Int("attempts", job.Attempts),
	)

	srv.publish(ctx, job)

	return nil
}

func (srv *retryService) publish(ctx context.Context, job *entity.NotificationJob) {
	if srv.publisher == nil {
		return
	}

	event := &service.JobEvent{
		RequestID: job.RequestID,
		JobID:     job.ID.String(),
		State:     string(job.State),
		Target:    fmt.Sprintf("%s:%s", job.Target.Kind, job.Target.Value),
		Attempts:  job.Attempts,
		LastError: job.LastError,
		At:        job.UpdatedAt,
	}

	status, err := srv.receipts.Status(ctx, job.ID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("[Retry] Failed to load receipts for job event", slog.String("jobID", event.JobID), slog.Any("error", err))
	} else {
		event.Delivered = status.Delivered
		event.Failed = status.Failed
	}

	if err := srv.publisher.PublishJobEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("[Retry] Failed to publish job event", slog.String("jobID", event.JobID), slog.Any("error", err))
	}
}
