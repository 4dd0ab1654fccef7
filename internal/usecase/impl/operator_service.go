package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDeadLetterLimit = 50
	maxDeadLetterLimit     = 500

	operatorSubject = "operator"
)

type operatorService struct {
	jobRepo      repository.JobRepository
	queue        service.DeliveryQueue
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	passwordHash string
	allowed      []string
	now          func() time.Time
	logger       *slog.Logger
}

// OperatorServiceParams holds dependencies for OperatorService, injected by Fx.
type OperatorServiceParams struct {
	fx.In

	JobRepo      repository.JobRepository
	Queue        service.DeliveryQueue
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOperatorService is the constructor for operatorService.
func NewOperatorService(params OperatorServiceParams) usecase.OperatorUsecase {
	var passwordHash string
	var allowed []string
	if params.Config != nil {
		passwordHash = params.Config.Operator.PasswordHash
		for _, email := range params.Config.Operator.AllowedEmails {
			allowed = append(allowed, strings.ToLower(strings.TrimSpace(email)))
		}
	}

	return &operatorService{
		jobRepo:      params.JobRepo,
		queue:        params.Queue,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		passwordHash: passwordHash,
		allowed:      allowed,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// Login checks the operator password and issues an access token.
func (srv *operatorService) Login(ctx context.Context, password string) (*usecase.LoginOutput, error) {
	if srv.passwordHash == "" || !srv.hasher.Check(password, srv.passwordHash) {
		srv.logger.Warn("[Operator] Rejected login attempt")

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(operatorSubject)
}

// LoginWithGoogle verifies a Google ID token and issues an access token when
// the account is on the operator allowlist. The token subject is the email.
func (srv *operatorService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	if srv.verifier == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(identity.Email)
	if !slices.Contains(srv.allowed, email) {
		srv.logger.Warn("[Operator] Google account not allowed", slog.String("email", email))

		return nil, domainerrors.ErrForbidden
	}

	return srv.issue(email)
}

func (srv *operatorService) issue(subject string) (*usecase.LoginOutput, error) {
	accessToken, expiresAt, err := srv.tokenService.GenerateToken(subject, []string{constants.RoleOperator})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &usecase.LoginOutput{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// ListDeadLetters pages through dead-lettered jobs, oldest first.
func (srv *operatorService) ListDeadLetters(ctx context.Context, limit, offset int) (*usecase.DeadLetterPage, error) {
	if limit <= 0 {
		limit = defaultDeadLetterLimit
	}
	limit = min(limit, maxDeadLetterLimit)
	offset = max(offset, 0)

	states := []entity.JobState{entity.JobDeadLetter}

	jobs, err := srv.jobRepo.FindJobsByState(ctx, states, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead-lettered jobs: %w", err)
	}

	total, err := srv.jobRepo.CountJobsByState(ctx, states)
	if err != nil {
		return nil, fmt.Errorf("failed to count dead-lettered jobs: %w", err)
	}

	return &usecase.DeadLetterPage{
		Jobs:   jobs,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Redrive resets a dead-lettered job to pending with a fresh attempt budget
// and enqueues it. Delivered receipts are kept, so tokens that already got
// the notification are not sent to again.
func (srv *operatorService) Redrive(ctx context.Context, jobID uuid.UUID) (*entity.NotificationJob, error) {
	job, err := srv.jobRepo.FindJobByID(ctx, jobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return nil, domainerrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	if job.State != entity.JobDeadLetter {
		return nil, domainerrors.ErrJobNotDeadLettered.WithDetails(string(job.State))
	}

	job.State = entity.JobPending
	job.Attempts = 0
	job.LastError = ""
	job.NextAttemptAt = nil
	job.UpdatedAt = srv.now()

	if err := srv.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to reset job: %w", err)
	}
	if _, err := srv.queue.Enqueue(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	srv.logger.Info("[Operator] Job re-driven", slog.String("jobID", jobID.String()))

	return job, nil
}
