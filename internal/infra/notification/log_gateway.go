package notification

import (
	"context"
	"log/slog"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/service"

	"github.com/google/uuid"
)

// logGateway accepts every message and only logs it. Used when Firebase is
// not configured so the pipeline can run locally.
type logGateway struct {
	logger *slog.Logger
}

var _ service.PushGateway = (*logGateway)(nil)

// NewLogGateway creates a gateway that logs instead of delivering.
func NewLogGateway(logger *slog.Logger) service.PushGateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) Name() string {
	return "log"
}

func (g *logGateway) Send(ctx context.Context, token string, msg *entity.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classifyFCMError(ctx, err)
	}

	messageID := "log-" + uuid.NewString()
	g.logger.Info("[LogGateway] Notification accepted",
		slog.String("token", maskToken(token)),
		slog.String("title", msg.Title),
		slog.String("priority", string(msg.Priority)),
		slog.String("messageID", messageID),
	)

	return messageID, nil
}

// maskToken keeps registration tokens out of logs.
func maskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "****"
	}

	return token[:visible] + "****"
}
