package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pushrelay/config"
	"pushrelay/internal/delivery/http/validator"
	"pushrelay/internal/domain/constants"
	domainerrors "pushrelay/internal/domain/errors"
	mockUsecase "pushrelay/internal/mocks/usecase"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockJobUsecase) {
	jobUC := mockUsecase.NewMockJobUsecase(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		JobUC:  jobUC,
	})

	return h, jobUC
}

func pushBody(t *testing.T, payload any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/jobs-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_SubmitsJob(t *testing.T) {
	h, jobUC := createTestPushHandler(t)

	jobUC.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitJobInput) bool {
			return input.TargetKind == "device" &&
				input.Target == "device-1" &&
				input.RequestID == "req-from-attributes"
		})).
		Return(uuid.New(), nil)

	body := pushBody(t, usecase.SubmitJobInput{
		Title:      "Hi",
		TargetKind: "device",
		Target:     "device-1",
		RequestID:  "req-from-payload",
	}, map[string]string{"request_id": "req-from-attributes"})

	rec := servePush(h, body, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFallsBackToPayload(t *testing.T) {
	h, jobUC := createTestPushHandler(t)

	jobUC.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitJobInput) bool {
			return input.RequestID == "req-from-payload"
		})).
		Return(uuid.New(), nil)

	body := pushBody(t, usecase.SubmitJobInput{TargetKind: "topic", Target: "news", RequestID: "req-from-payload"}, nil)

	rec := servePush(h, body, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "bad base64", body: `{"message":{"data":"***"}}`},
		{name: "payload not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, jobUC := createTestPushHandler(t)

			rec := servePush(h, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			jobUC.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_InvalidPayloadIsAcked(t *testing.T) {
	h, jobUC := createTestPushHandler(t)

	body := pushBody(t, usecase.SubmitJobInput{TargetKind: "email", Target: "a@b.c"}, nil)

	rec := servePush(h, body, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	jobUC.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestPushHandler_SubmitErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "queue full", err: domainerrors.ErrQueueFull, wantCode: http.StatusServiceUnavailable},
		{name: "store unavailable", err: domainerrors.NewStoreUnavailableError("postgres", errors.New("down")), wantCode: http.StatusServiceUnavailable},
		{name: "unknown error", err: errors.New("boom"), wantCode: http.StatusServiceUnavailable},
		{name: "invalid target", err: domainerrors.ErrInvalidTarget, wantCode: http.StatusOK},
		{name: "invalid payload", err: domainerrors.ErrInvalidPayload.WithDetails(`data key "from" is reserved`), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, jobUC := createTestPushHandler(t)
			jobUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(uuid.Nil, tt.err)

			body := pushBody(t, usecase.SubmitJobInput{TargetKind: "device", Target: "device-1"}, nil)

			rec := servePush(h, body, "")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushAuth(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantCode      int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "rejected token", authorization: "Bearer bad", validateErr: errors.New("expired"), wantCode: http.StatusUnauthorized},
		{
			name:          "foreign issuer",
			authorization: "Bearer good",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantCode:      http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer good",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode:      http.StatusUnauthorized,
		},
		{
			name:          "google token",
			authorization: "Bearer good",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantCode:      http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, jobUC := createTestPushHandler(t)
			h.verifyPushAuth = true

			var gotAudience string
			h.validateToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.validateErr
			}

			if tt.wantCode == http.StatusOK {
				jobUC.EXPECT().Submit(mock.Anything, mock.Anything).Return(uuid.New(), nil)
			}

			body := pushBody(t, usecase.SubmitJobInput{TargetKind: "device", Target: "device-1"}, nil)

			rec := servePush(h, body, tt.authorization)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.payload != nil || tt.validateErr != nil {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		pubsub *config.PubSubConfig
		want   bool
	}{
		{name: "no pubsub", env: "production", want: false},
		{name: "local provider", env: "production", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, want: false},
		{name: "google in develop", env: constants.EnvDevelop, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, want: false},
		{name: "google in production", env: "production", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{
				Config: cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
				JobUC:  mockUsecase.NewMockJobUsecase(t),
			})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
