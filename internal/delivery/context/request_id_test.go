package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJob(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	jobID := uuid.New()

	ctx, jobLogger := WithJob(context.Background(), logger, jobID, "req-1")

	gotID, ok := GetJobIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, jobID, gotID)
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, jobLogger, GetLoggerOrDefault(ctx, logger))

	jobLogger.Info("processing")
	assert.Contains(t, buf.String(), "job_id="+jobID.String())
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestWithJob_NoRequestID(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	ctx, _ := WithJob(context.Background(), logger, uuid.New(), "")

	assert.Empty(t, GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}
