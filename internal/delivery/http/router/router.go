// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushrelay/internal/delivery/http/middleware"
	"pushrelay/internal/delivery/http/router/handler"
	"pushrelay/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TokenHandler    *handler.TokenHandler
	TopicHandler    *handler.TopicHandler
	JobHandler      *handler.JobHandler
	OperatorHandler *handler.OperatorHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tokenHandler    *handler.TokenHandler
	topicHandler    *handler.TopicHandler
	jobHandler      *handler.JobHandler
	operatorHandler *handler.OperatorHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tokenHandler:    params.TokenHandler,
		topicHandler:    params.TopicHandler,
		jobHandler:      params.JobHandler,
		operatorHandler: params.OperatorHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	// Device client token lifecycle
	devicesGroup := v1.Group("/devices")
	{
		devicesGroup.POST("/:deviceId/tokens", r.tokenHandler.RegisterToken)
		devicesGroup.GET("/:deviceId/tokens", r.tokenHandler.ListTokens)
	}
	v1.DELETE("/tokens/:token", r.tokenHandler.InvalidateToken)

	topicsGroup := v1.Group("/topics")
	{
		topicsGroup.GET("/:topic/subscribers", r.topicHandler.ListSubscribers)
		topicsGroup.POST("/:topic/subscribers", r.topicHandler.Subscribe)
		topicsGroup.DELETE("/:topic/subscribers/:deviceId", r.topicHandler.Unsubscribe)
	}

	// Producers
	jobsGroup := v1.Group("/jobs")
	{
		jobsGroup.POST("", r.jobHandler.SubmitJob)
		jobsGroup.GET("/:id", r.jobHandler.GetJob)
		jobsGroup.POST("/:id/cancel", r.jobHandler.CancelJob)
	}

	// Operator routes
	e.POST("/admin/login", r.operatorHandler.Login)
	e.POST("/admin/login/google", r.operatorHandler.GoogleLogin)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleOperator))
	{
		adminGroup.GET("/dead-letters", r.operatorHandler.ListDeadLetters)
		adminGroup.POST("/dead-letters/:id/redrive", r.operatorHandler.Redrive)
	}
}
