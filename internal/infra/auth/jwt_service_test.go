package auth

import (
	"testing"
	"time"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"
	domainerrors "pushrelay/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Operator.TokenSecret = secret
	cfg.Operator.TokenTTL = time.Hour

	srv, err := NewJWTService(cfg)
	require.NoError(t, err)

	return srv.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	srv := newTestJWTService(t, "test_operator_secret_key_very_long_for_testing")
	issuedAt := time.Now()
	srv.now = func() time.Time { return issuedAt }

	token, expiresAt, err := srv.GenerateToken("operator", []string{constants.RoleOperator})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, issuedAt.Add(time.Hour), expiresAt, time.Second)

	claims, err := srv.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, []string{constants.RoleOperator}, claims.Roles)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.ErrorContains(t, err, "secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Operator.TokenSecret = "secret"

	srv, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, srv.(*jwtService).ttl)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	srv := newTestJWTService(t, "test_operator_secret_key_very_long_for_testing")
	other := newTestJWTService(t, "a_completely_different_secret_for_testing")

	foreign, _, err := other.GenerateToken("operator", []string{constants.RoleOperator})
	require.NoError(t, err)

	expiredSrv := newTestJWTService(t, "test_operator_secret_key_very_long_for_testing")
	expiredSrv.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSrv.GenerateToken("operator", []string{constants.RoleOperator})
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "operator", "iss": tokenIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "none algorithm", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := srv.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
