// Package notification provides PushGateway implementations.
package notification

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pushrelay/config"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	reasonUnregistered     = "unregistered"
	reasonInvalidArgument  = "invalid_argument"
	reasonSenderIDMismatch = "sender_id_mismatch"
	reasonThirdPartyAuth   = "third_party_auth"
	reasonRateLimited      = "rate_limited"
	reasonUnavailable      = "unavailable"
	reasonInternal         = "internal"
	reasonTimeout          = "timeout"
	reasonCancelled        = "cancelled"
	reasonNetwork          = "network"

	androidPriorityHigh   = "high"
	androidPriorityNormal = "normal"
	apnsPriorityHigh      = "10"
	apnsPriorityNormal    = "5"
)

// messagingClient is the subset of *messaging.Client used by the gateway.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseGateway struct {
	client messagingClient
	dryRun bool
	logger *slog.Logger
}

var _ service.PushGateway = (*firebaseGateway)(nil)

// NewFirebaseGateway creates a gateway backed by Firebase Cloud Messaging.
// Application default credentials are used when no credentials file is set.
func NewFirebaseGateway(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushGateway, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseGateway(client, cfg.DryRun, logger), nil
}

func newFirebaseGateway(client messagingClient, dryRun bool, logger *slog.Logger) *firebaseGateway {
	return &firebaseGateway{
		client: client,
		dryRun: dryRun,
		logger: logger,
	}
}

func (g *firebaseGateway) Name() string {
	return "fcm"
}

// Send delivers msg to a single registration token and classifies the outcome.
func (g *firebaseGateway) Send(ctx context.Context, token string, msg *entity.Message) (string, error) {
	message := buildFCMMessage(token, msg)

	var (
		messageID string
		err       error
	)
	if g.dryRun {
		messageID, err = g.client.SendDryRun(ctx, message)
	} else {
		messageID, err = g.client.Send(ctx, message)
	}
	if err != nil {
		classified := classifyFCMError(ctx, err)
		g.logger.Debug("[FCM] Send failed",
			slog.String("reason", domainerrors.FailureReason(classified)),
			slog.Bool("permanent", domainerrors.IsPermanent(classified)),
			slog.Duration("retryAfter", domainerrors.RetryAfter(classified)),
			slog.Any("error", err),
		)

		return "", classified
	}

	return messageID, nil
}

func buildFCMMessage(token string, msg *entity.Message) *messaging.Message {
	androidPriority, apnsPriority := androidPriorityNormal, apnsPriorityNormal
	if msg.Priority == entity.PriorityHigh {
		androidPriority, apnsPriority = androidPriorityHigh, apnsPriorityHigh
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
			Notification: &messaging.AndroidNotification{
				ChannelID: msg.ChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriority},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	return message
}

// classifyFCMError maps an FCM error onto the delivery error taxonomy.
// Only unregistered and sender mismatch condemn the token. Invalid argument
// and APNs auth errors reject the message or the project setup and leave the
// token alone. Anything unrecognised is treated as transient.
func classifyFCMError(ctx context.Context, err error) error {
	switch {
	case messaging.IsUnregistered(err):
		return domainerrors.NewPermanentDeliveryError(reasonUnregistered, err)
	case messaging.IsSenderIDMismatch(err):
		return domainerrors.NewPermanentDeliveryError(reasonSenderIDMismatch, err)
	case messaging.IsInvalidArgument(err):
		return domainerrors.NewRejectedMessageError(reasonInvalidArgument, err)
	case messaging.IsThirdPartyAuthError(err):
		return domainerrors.NewRejectedMessageError(reasonThirdPartyAuth, err)
	case messaging.IsQuotaExceeded(err):
		return transientWithRetryAfter(reasonRateLimited, err)
	case messaging.IsUnavailable(err):
		return transientWithRetryAfter(reasonUnavailable, err)
	case messaging.IsInternal(err):
		return transientWithRetryAfter(reasonInternal, err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domainerrors.NewTransientDeliveryError(reasonTimeout, err)
	case errors.Is(err, context.Canceled):
		return domainerrors.NewTransientDeliveryError(reasonCancelled, err)
	default:
		return domainerrors.NewTransientDeliveryError(reasonNetwork, err)
	}
}

func transientWithRetryAfter(reason string, err error) error {
	transient := domainerrors.NewTransientDeliveryError(reason, err)
	transient.RetryAfter = parseRetryAfter(errorutils.HTTPResponse(err), time.Now())

	return transient
}

// parseRetryAfter reads the Retry-After header as seconds or an HTTP date.
func parseRetryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp == nil {
		return 0
	}

	value := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return max(time.Duration(seconds)*time.Second, 0)
	}
	if at, err := http.ParseTime(value); err == nil {
		return max(at.Sub(now), 0)
	}

	return 0
}
