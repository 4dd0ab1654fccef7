package handler

import (
	"net/http"
	"testing"
	"time"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	mockUsecase "pushrelay/internal/mocks/usecase"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestOperatorHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockOperatorUsecase) {
	operatorUC := mockUsecase.NewMockOperatorUsecase(t)
	h := NewOperatorHandler(OperatorHandlerParams{OperatorUC: operatorUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/admin/login", h.Login)
	e.POST("/admin/login/google", h.GoogleLogin)
	e.GET("/admin/dead-letters", h.ListDeadLetters)
	e.POST("/admin/dead-letters/:id/redrive", h.Redrive)

	return e, operatorUC
}

func TestOperatorHandler_Login(t *testing.T) {
	e, operatorUC := createTestOperatorHandler(t)
	expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	operatorUC.EXPECT().Login(mock.Anything, "s3cret").Return(&usecase.LoginOutput{
		AccessToken: "signed.jwt.token",
		ExpiresAt:   expiresAt,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/admin/login", `{"password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.LoginOutput
	decodeData(t, rec, &output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.True(t, expiresAt.Equal(output.ExpiresAt))
}

func TestOperatorHandler_Login_Errors(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		e, _ := createTestOperatorHandler(t)

		rec := doRequest(e, http.MethodPost, "/admin/login", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		e, operatorUC := createTestOperatorHandler(t)
		operatorUC.EXPECT().Login(mock.Anything, "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

		rec := doRequest(e, http.MethodPost, "/admin/login", `{"password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestOperatorHandler_GoogleLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(operatorUC *mockUsecase.MockOperatorUsecase)
		wantCode int
	}{
		{
			name: "allowed account",
			body: `{"id_token":"google-id-token"}`,
			setup: func(operatorUC *mockUsecase.MockOperatorUsecase) {
				operatorUC.EXPECT().LoginWithGoogle(mock.Anything, "google-id-token").
					Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "account not allowed",
			body: `{"id_token":"other"}`,
			setup: func(operatorUC *mockUsecase.MockOperatorUsecase) {
				operatorUC.EXPECT().LoginWithGoogle(mock.Anything, "other").Return(nil, domainerrors.ErrForbidden)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, operatorUC := createTestOperatorHandler(t)
			if tt.setup != nil {
				tt.setup(operatorUC)
			}

			rec := doRequest(e, http.MethodPost, "/admin/login/google", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestOperatorHandler_ListDeadLetters(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{name: "no paging", query: "", wantLimit: 0, wantOffset: 0},
		{name: "explicit paging", query: "?limit=10&offset=20", wantLimit: 10, wantOffset: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, operatorUC := createTestOperatorHandler(t)
			operatorUC.EXPECT().
				ListDeadLetters(mock.Anything, tt.wantLimit, tt.wantOffset).
				Return(&usecase.DeadLetterPage{
					Jobs:  []*entity.NotificationJob{{ID: uuid.New(), State: entity.JobDeadLetter}},
					Total: 1,
					Limit: 50,
				}, nil)

			rec := doRequest(e, http.MethodGet, "/admin/dead-letters"+tt.query, "")
			assert.Equal(t, http.StatusOK, rec.Code)

			var page usecase.DeadLetterPage
			decodeData(t, rec, &page)
			assert.Equal(t, int64(1), page.Total)
			assert.Len(t, page.Jobs, 1)
		})
	}
}

func TestOperatorHandler_ListDeadLetters_BadQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{name: "bad limit", query: "?limit=ten", wantErr: "INVALID_LIMIT"},
		{name: "bad offset", query: "?offset=-x", wantErr: "INVALID_OFFSET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestOperatorHandler(t)

			rec := doRequest(e, http.MethodGet, "/admin/dead-letters"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestOperatorHandler_Redrive(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		e, operatorUC := createTestOperatorHandler(t)
		jobID := uuid.New()
		operatorUC.EXPECT().Redrive(mock.Anything, jobID).Return(&entity.NotificationJob{ID: jobID, State: entity.JobPending}, nil)

		rec := doRequest(e, http.MethodPost, "/admin/dead-letters/"+jobID.String()+"/redrive", "")
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("not dead-lettered", func(t *testing.T) {
		e, operatorUC := createTestOperatorHandler(t)
		jobID := uuid.New()
		operatorUC.EXPECT().Redrive(mock.Anything, jobID).Return(nil, domainerrors.ErrJobNotDeadLettered)

		rec := doRequest(e, http.MethodPost, "/admin/dead-letters/"+jobID.String()+"/redrive", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "JOB_NOT_DEAD_LETTERED", decodeEnvelope(t, rec).Error.Code)
	})
}
