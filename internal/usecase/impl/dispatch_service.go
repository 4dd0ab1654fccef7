package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pushrelay/config"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"
	"pushrelay/internal/usecase"
	"pushrelay/internal/util"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultCallTimeout       = 10 * time.Second
	defaultFanoutConcurrency = 16

	reasonCallTimeout = "timeout"
	reasonUnknown     = "unknown"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	tokens           usecase.TokenUsecase
	topics           usecase.TopicUsecase
	receipts         usecase.ReceiptUsecase
	gateway          service.PushGateway
	callTimeout      time.Duration
	fanout           int
	defaultTitle     string
	defaultBody      string
	androidChannelID string
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Tokens   usecase.TokenUsecase
	Topics   usecase.TopicUsecase
	Receipts usecase.ReceiptUsecase
	Gateway  service.PushGateway
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	srv := &dispatchService{
		tokens:      params.Tokens,
		topics:      params.Topics,
		receipts:    params.Receipts,
		gateway:     params.Gateway,
		callTimeout: defaultCallTimeout,
		fanout:      defaultFanoutConcurrency,
		logger:      params.Logger,
	}

	if params.Config != nil {
		if params.Config.Dispatch.CallTimeout > 0 {
			srv.callTimeout = params.Config.Dispatch.CallTimeout
		}
		if params.Config.Dispatch.FanoutConcurrency > 0 {
			srv.fanout = params.Config.Dispatch.FanoutConcurrency
		}
		srv.defaultTitle = params.Config.Notification.DefaultTitle
		srv.defaultBody = params.Config.Notification.DefaultBody
		srv.androidChannelID = params.Config.Notification.AndroidChannelID
	}

	return srv
}

// Dispatch sends the job to every recipient token that has neither a
// delivered nor a permanently failed receipt yet and records each attempt.
func (srv *dispatchService) Dispatch(ctx context.Context, job *entity.NotificationJob) ([]*entity.DeliveryAttempt, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	tokens, err := srv.resolve(ctx, job)
	if err != nil {
		return nil, err
	}

	pending := make([]*entity.Token, 0, len(tokens))
	for _, token := range tokens {
		settled, err := srv.receipts.AlreadySettled(ctx, job.ID, token.Value)
		if err != nil {
			return nil, err
		}
		if settled {
			logger.Debug("[Dispatcher] Skipping token with settled receipt",
				slog.String("token", util.TokenPrefix(token.Value)),
			)

			continue
		}
		pending = append(pending, token)
	}

	msg := srv.buildMessage(job)
	attempts := make([]*entity.DeliveryAttempt, len(pending))

	var (
		mu        sync.Mutex
		recordErr error
	)

	var g errgroup.Group
	g.SetLimit(srv.fanout)
	for i, token := range pending {
		g.Go(func() error {
			attempt := srv.send(ctx, job, token, msg)
			attempts[i] = attempt

			if err := srv.receipts.Record(ctx, attempt); err != nil {
				mu.Lock()
				if recordErr == nil {
					recordErr = err
				}
				mu.Unlock()
			}

			return nil
		})
	}
	_ = g.Wait()

	logger.Info("[Dispatcher] Dispatch round completed",
		slog.Int("round", job.Attempts),
		slog.Int("recipients", len(tokens)),
		slog.Int("sent", len(pending)),
	)

	if recordErr != nil {
		return attempts, fmt.Errorf("failed to record delivery attempts: %w", recordErr)
	}

	return attempts, nil
}

func (srv *dispatchService) resolve(ctx context.Context, job *entity.NotificationJob) ([]*entity.Token, error) {
	switch job.Target.Kind {
	case entity.TargetDevice:
		tokens, err := srv.tokens.Lookup(ctx, job.Target.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve device tokens: %w", err)
		}

		return tokens, nil
	case entity.TargetTopic:
		deviceIDs, err := srv.topics.Subscribers(ctx, job.Target.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve topic subscribers: %w", err)
		}
		tokens, err := srv.tokens.LookupMany(ctx, deviceIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subscriber tokens: %w", err)
		}

		return tokens, nil
	default:
		return nil, domainerrors.ErrInvalidTarget
	}
}

// send performs one upstream call and classifies its outcome.
func (srv *dispatchService) send(ctx context.Context, job *entity.NotificationJob, token *entity.Token, msg *entity.Message) *entity.DeliveryAttempt {
	attempt := entity.NewDeliveryAttempt(job.ID, token, job.Attempts)
	attempt.Transition(entity.AttemptInFlight)

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	callCtx, cancel := context.WithTimeout(ctx, srv.callTimeout)
	defer cancel()

	messageID, err := srv.gateway.Send(callCtx, token.Value, msg)

	switch {
	case err == nil:
		attempt.Transition(entity.AttemptDelivered)
		attempt.MessageID = messageID
	case domainerrors.IsPermanent(err):
		attempt.Transition(entity.AttemptPermanentFailure)
		attempt.Reason = domainerrors.FailureReason(err)
		if !domainerrors.IsTokenInvalid(err) {
			break
		}
		if invErr := srv.tokens.Invalidate(ctx, token.Value); invErr != nil {
			logger.Error("[Dispatcher] Failed to invalidate token",
				slog.String("token", util.TokenPrefix(token.Value)),
				slog.Any("error", invErr),
			)
		}
	case domainerrors.IsTransient(err):
		attempt.Transition(entity.AttemptTransientFailure)
		attempt.Reason = domainerrors.FailureReason(err)
		attempt.RetryAfter = domainerrors.RetryAfter(err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
		attempt.Transition(entity.AttemptTransientFailure)
		attempt.Reason = reasonCallTimeout
	default:
		attempt.Transition(entity.AttemptTransientFailure)
		attempt.Reason = reasonUnknown
	}

	if err != nil {
		logger.Warn("[Dispatcher] Upstream call failed",
			slog.String("gateway", srv.gateway.Name()),
			slog.String("token", util.TokenPrefix(token.Value)),
			slog.String("state", string(attempt.State)),
			slog.Any("error", err),
		)
	}

	return attempt
}

func (srv *dispatchService) buildMessage(job *entity.NotificationJob) *entity.Message {
	msg := &entity.Message{
		Title:     job.Payload.Title,
		Body:      job.Payload.Body,
		Data:      job.Payload.Data,
		Priority:  job.Priority,
		ChannelID: srv.androidChannelID,
	}
	if msg.Title == "" {
		msg.Title = srv.defaultTitle
	}
	if msg.Body == "" {
		msg.Body = srv.defaultBody
	}

	return msg
}
