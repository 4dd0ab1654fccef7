package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/usecase"
	"pushrelay/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// receiptService implements the ReceiptUsecase interface.
type receiptService struct {
	receiptRepo repository.ReceiptRepository
	jobRepo     repository.JobRepository
	locks       *util.KeyedMutex
	logger      *slog.Logger
}

// NewReceiptService creates the delivery receipt tracker.
func NewReceiptService(receiptRepo repository.ReceiptRepository, jobRepo repository.JobRepository, logger *slog.Logger) usecase.ReceiptUsecase {
	return &receiptService{
		receiptRepo: receiptRepo,
		jobRepo:     jobRepo,
		locks:       util.NewKeyedMutex(),
		logger:      logger,
	}
}

// Record appends an attempt outcome. Writes for the same job are serialized.
func (s *receiptService) Record(ctx context.Context, attempt *entity.DeliveryAttempt) error {
	unlock := s.locks.Lock(attempt.JobID.String())
	defer unlock()

	if err := s.receiptRepo.CreateAttempt(ctx, attempt); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("[Receipt] Attempt recorded",
		slog.String("jobID", attempt.JobID.String()),
		slog.String("token", util.TokenPrefix(attempt.Token)),
		slog.String("state", string(attempt.State)),
		slog.Int("attempt", attempt.Attempt),
	)

	return nil
}

// AlreadySettled reports whether the token already has a delivered or
// permanently failed attempt for the job.
func (s *receiptService) AlreadySettled(ctx context.Context, jobID uuid.UUID, token string) (bool, error) {
	for _, state := range []entity.AttemptState{entity.AttemptDelivered, entity.AttemptPermanentFailure} {
		settled, err := s.receiptRepo.HasAttemptInState(ctx, jobID, token, state)
		if err != nil {
			return false, fmt.Errorf("failed to check delivery receipt: %w", err)
		}
		if settled {
			return true, nil
		}
	}

	return false, nil
}

// Status aggregates the attempts of a job into a per-recipient breakdown.
func (s *receiptService) Status(ctx context.Context, jobID uuid.UUID) (*entity.JobStatus, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return nil, domainerrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	attempts, err := s.receiptRepo.FindAttemptsByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempts: %w", err)
	}

	return aggregateStatus(job, attempts), nil
}

// aggregateStatus folds attempts (oldest first) into the latest state per token.
// A delivered token stays delivered even if a later attempt was recorded for it.
func aggregateStatus(job *entity.NotificationJob, attempts []*entity.DeliveryAttempt) *entity.JobStatus {
	status := &entity.JobStatus{
		JobID:      job.ID,
		State:      job.State,
		Target:     job.Target,
		Attempts:   job.Attempts,
		LastError:  job.LastError,
		Recipients: []*entity.RecipientStatus{},
		UpdatedAt:  job.UpdatedAt,
	}

	byToken := make(map[string]*entity.RecipientStatus, len(attempts))
	for _, attempt := range attempts {
		recipient, ok := byToken[attempt.Token]
		if !ok {
			recipient = &entity.RecipientStatus{
				DeviceID: attempt.DeviceID,
				Token:    attempt.Token,
			}
			byToken[attempt.Token] = recipient
			status.Recipients = append(status.Recipients, recipient)
		}
		recipient.Attempts++

		if recipient.State == entity.AttemptDelivered {
			continue
		}
		recipient.State = attempt.State
		recipient.Reason = attempt.Reason
	}

	for _, recipient := range status.Recipients {
		switch {
		case recipient.State == entity.AttemptDelivered:
			status.Delivered++
		case recipient.State == entity.AttemptPermanentFailure:
			status.Failed++
		case job.State.IsTerminal():
			status.Failed++
		default:
			status.Pending++
		}
	}

	return status
}
