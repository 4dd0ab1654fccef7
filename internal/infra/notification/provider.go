package notification

import (
	"context"
	"log/slog"

	"pushrelay/config"
	"pushrelay/internal/domain/service"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway selects the upstream gateway from configuration.
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Warn("Firebase not configured, notifications are only logged")

		return NewLogGateway(params.Logger), nil
	}

	gateway, err := NewFirebaseGateway(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firebase gateway initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("dry_run", cfg.DryRun),
	)

	return gateway, nil
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
