// Package google verifies Google-issued ID tokens for operator sign-in.
package google

import (
	"context"
	"log/slog"

	"pushrelay/config"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks the signature, expiry and audience of a Google ID token.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// IDTokenVerifier implements service.IdentityVerifier for Google accounts.
type IDTokenVerifier struct {
	clientID string
	validate tokenValidator
	logger   *slog.Logger
}

// NewIDTokenVerifier returns nil when operator.googleClientId is not set,
// which leaves Google sign-in disabled.
func NewIDTokenVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	if cfg.Operator.GoogleClientID == "" {
		return nil
	}

	return &IDTokenVerifier{
		clientID: cfg.Operator.GoogleClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.IdentityVerifier.
func (v *IDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OperatorIdentity, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid Google ID token")
	}

	if err := verifyClaims(payload); err != nil {
		v.logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	identity := &service.OperatorIdentity{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: true,
		Name:          stringClaim(payload.Claims, "name"),
	}

	v.logger.Info("Google ID token verified", slog.String("email", identity.Email))

	return identity, nil
}

// verifyClaims checks what idtoken.Validate leaves to the caller.
func verifyClaims(payload *idtoken.Payload) error {
	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if stringClaim(payload.Claims, "email") == "" {
		return errors.New("token carries no email")
	}

	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return errors.New("email not verified")
	}

	return nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
