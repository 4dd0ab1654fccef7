package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pushrelay/internal/delivery/http/response"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OperatorHandlerParams holds dependencies for OperatorHandler, injected by Fx.
type OperatorHandlerParams struct {
	fx.In

	OperatorUC usecase.OperatorUsecase
	Logger     *slog.Logger
}

// OperatorHandler serves the operator endpoints.
type OperatorHandler struct {
	operatorUC usecase.OperatorUsecase
	logger     *slog.Logger
}

// NewOperatorHandler is the constructor for OperatorHandler
func NewOperatorHandler(params OperatorHandlerParams) *OperatorHandler {
	return &OperatorHandler{
		operatorUC: params.OperatorUC,
		logger:     params.Logger,
	}
}

// LoginRequest carries the operator password.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login exchanges the operator password for an access token.
func (h *OperatorHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.operatorUC.Login(c.Request().Context(), req.Password)
	if err != nil {
		h.logger.Warn("Operator login failed", slog.String("remote_ip", c.RealIP()))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GoogleLoginRequest carries a Google ID token from the operator console.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// GoogleLogin exchanges a Google ID token of an allowed account for an access token.
func (h *OperatorHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.operatorUC.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		h.logger.Warn("Operator Google login failed", slog.String("remote_ip", c.RealIP()))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// ListDeadLetters pages through dead-lettered jobs.
func (h *OperatorHandler) ListDeadLetters(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_LIMIT", "limit must be an integer")
	}

	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.BadRequest(c, "INVALID_OFFSET", "offset must be an integer")
	}

	page, err := h.operatorUC.ListDeadLetters(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Redrive puts a dead-lettered job back on the queue.
func (h *OperatorHandler) Redrive(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	job, err := h.operatorUC.Redrive(c.Request().Context(), jobID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Dead-lettered job redriven", slog.String("job_id", jobID.String()))

	return response.Success(c, http.StatusAccepted, job)
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
