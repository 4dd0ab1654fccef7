package handler

import (
	"net/http"
	"testing"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	mockUsecase "pushrelay/internal/mocks/usecase"
	"pushrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestTokenHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockTokenUsecase) {
	tokenUC := mockUsecase.NewMockTokenUsecase(t)
	h := NewTokenHandler(TokenHandlerParams{TokenUC: tokenUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/v1/devices/:deviceId/tokens", h.RegisterToken)
	e.GET("/v1/devices/:deviceId/tokens", h.ListTokens)
	e.DELETE("/v1/tokens/:token", h.InvalidateToken)

	return e, tokenUC
}

func TestTokenHandler_RegisterToken(t *testing.T) {
	e, tokenUC := createTestTokenHandler(t)

	tokenUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterTokenInput{DeviceID: "device-1", Token: "token-a", Platform: "android"}).
		Return(&entity.Token{Value: "token-a", DeviceID: "device-1", Status: entity.TokenActive}, nil)

	rec := doRequest(e, http.MethodPost, "/v1/devices/device-1/tokens", `{"token":"token-a","platform":"android"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var token entity.Token
	decodeData(t, rec, &token)
	assert.Equal(t, "token-a", token.Value)
	assert.Equal(t, entity.TokenActive, token.Status)
}

func TestTokenHandler_RegisterToken_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(tokenUC *mockUsecase.MockTokenUsecase)
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed body",
			body:     `{"token":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "missing token",
			body:     `{"platform":"android"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "unknown platform",
			body:     `{"token":"token-a","platform":"symbian"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name: "invalidated token",
			body: `{"token":"token-a"}`,
			setup: func(tokenUC *mockUsecase.MockTokenUsecase) {
				tokenUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrTokenInvalidated)
			},
			wantCode: http.StatusConflict,
			wantErr:  "TOKEN_INVALIDATED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenUC := createTestTokenHandler(t)
			if tt.setup != nil {
				tt.setup(tokenUC)
			}

			rec := doRequest(e, http.MethodPost, "/v1/devices/device-1/tokens", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			env := decodeEnvelope(t, rec)
			if assert.NotNil(t, env.Error) {
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestTokenHandler_ListTokens(t *testing.T) {
	e, tokenUC := createTestTokenHandler(t)

	tokenUC.EXPECT().Lookup(mock.Anything, "device-1").Return([]*entity.Token{
		{Value: "token-a", DeviceID: "device-1", Status: entity.TokenActive},
		{Value: "token-b", DeviceID: "device-1", Status: entity.TokenStale},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/v1/devices/device-1/tokens", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var tokens []entity.Token
	decodeData(t, rec, &tokens)
	assert.Len(t, tokens, 2)
}

func TestTokenHandler_InvalidateToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, tokenUC := createTestTokenHandler(t)
		tokenUC.EXPECT().Invalidate(mock.Anything, "token-a").Return(nil)

		rec := doRequest(e, http.MethodDelete, "/v1/tokens/token-a", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		e, tokenUC := createTestTokenHandler(t)
		tokenUC.EXPECT().Invalidate(mock.Anything, "token-x").Return(domainerrors.ErrTokenNotFound)

		rec := doRequest(e, http.MethodDelete, "/v1/tokens/token-x", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "TOKEN_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}
