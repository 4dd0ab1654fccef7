// Package context carries request and job scoped values (request id, job id,
// logger) between the delivery layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyJobID     contextKey = "job_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on the echo context, or a fresh
// one when the request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithJob scopes ctx to a notification job: the job id and, when the job was
// submitted with one, the producer's request id are stored and added to the
// logger so every line written while processing the job carries them.
func WithJob(ctx context.Context, logger *slog.Logger, jobID uuid.UUID, requestID string) (context.Context, *slog.Logger) {
	jobLogger := logger.With(slog.String("job_id", jobID.String()))
	ctx = context.WithValue(ctx, keyJobID, jobID)
	if requestID != "" {
		jobLogger = jobLogger.With(slog.String("request_id", requestID))
		ctx = WithRequestID(ctx, requestID)
	}

	return WithLogger(ctx, jobLogger), jobLogger
}

// GetJobIDFromContext returns the job being processed, if any.
func GetJobIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyJobID).(uuid.UUID)

	return id, ok
}

// GetLoggerOrDefault returns the request or job scoped logger, falling back
// to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
