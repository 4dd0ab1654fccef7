package handler

import (
	"log/slog"
	"net/http"

	"pushrelay/internal/delivery/http/response"
	"pushrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TopicHandlerParams holds dependencies for TopicHandler, injected by Fx.
type TopicHandlerParams struct {
	fx.In

	TopicUC usecase.TopicUsecase
	Logger  *slog.Logger
}

// TopicHandler manages topic subscriptions.
type TopicHandler struct {
	topicUC usecase.TopicUsecase
	logger  *slog.Logger
}

// NewTopicHandler is the constructor for TopicHandler
func NewTopicHandler(params TopicHandlerParams) *TopicHandler {
	return &TopicHandler{
		topicUC: params.TopicUC,
		logger:  params.Logger,
	}
}

// SubscribeRequest is the body of a subscription.
type SubscribeRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
}

// Subscribe adds a device to a topic.
func (h *TopicHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	topic := c.Param("topic")
	if err := h.topicUC.Subscribe(c.Request().Context(), topic, req.DeviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"topic": topic, "device_id": req.DeviceID})
}

// Unsubscribe removes a device from a topic.
func (h *TopicHandler) Unsubscribe(c echo.Context) error {
	if err := h.topicUC.Unsubscribe(c.Request().Context(), c.Param("topic"), c.Param("deviceId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"})
}

// ListSubscribers returns the device ids subscribed to a topic.
func (h *TopicHandler) ListSubscribers(c echo.Context) error {
	deviceIDs, err := h.topicUC.Subscribers(c.Request().Context(), c.Param("topic"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deviceIDs)
}
