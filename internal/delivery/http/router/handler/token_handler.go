// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"pushrelay/internal/delivery/http/response"
	"pushrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler serves the device client token endpoints.
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest is the body of a token registration.
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"omitempty,oneof=android ios web"`
}

// RegisterToken records a freshly issued token for the device.
func (h *TokenHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.tokenUC.Register(c.Request().Context(), &usecase.RegisterTokenInput{
		DeviceID: c.Param("deviceId"),
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// ListTokens returns the deliverable tokens of a device.
func (h *TokenHandler) ListTokens(c echo.Context) error {
	tokens, err := h.tokenUC.Lookup(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// InvalidateToken marks a token invalid, e.g. on sign-out.
func (h *TokenHandler) InvalidateToken(c echo.Context) error {
	if err := h.tokenUC.Invalidate(c.Request().Context(), c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token invalidated"})
}
