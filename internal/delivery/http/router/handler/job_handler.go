package handler

import (
	"log/slog"
	"net/http"

	"pushrelay/internal/delivery/http/response"
	"pushrelay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler serves the producer endpoints.
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// SubmitJobResponse is returned once the job is durably queued.
type SubmitJobResponse struct {
	JobID uuid.UUID `json:"job_id"`
}

// SubmitJob queues a notification and returns before any delivery happens.
func (h *JobHandler) SubmitJob(c echo.Context) error {
	var req usecase.SubmitJobInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	jobID, err := h.jobUC.Submit(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, SubmitJobResponse{JobID: jobID})
}

// GetJob returns the job state and its per-recipient receipts.
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	status, err := h.jobUC.Status(c.Request().Context(), jobID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// CancelJob asks for a non-terminal job to stop being retried.
func (h *JobHandler) CancelJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	job, err := h.jobUC.Cancel(c.Request().Context(), jobID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, job)
}
