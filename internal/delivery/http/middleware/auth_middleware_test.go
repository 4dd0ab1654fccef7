package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	mockSvc "pushrelay/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dead-letters", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	claims := &service.Claims{
		Roles:            []string{"operator"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "operator"},
	}
	tokenSvc.EXPECT().ValidateToken("good").Return(claims, nil)

	c, rec := newAuthContext("Bearer good")
	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true

		subject, ok := GetSubject(c)
		assert.True(t, ok)
		assert.Equal(t, "operator", subject)

		roles, ok := GetRoles(c)
		assert.True(t, ok)
		assert.Equal(t, []string{"operator"}, roles)

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		validateErr   bool
		wantBody      string
	}{
		{name: "missing header", wantBody: "MISSING_TOKEN"},
		{name: "wrong scheme", authorization: "Token abc", wantBody: "INVALID_TOKEN_FORMAT"},
		{name: "empty bearer", authorization: "Bearer ", wantBody: "INVALID_TOKEN_FORMAT"},
		{name: "rejected token", authorization: "Bearer bad", validateErr: true, wantBody: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.validateErr {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrUnauthorized)
			}
			m := NewAuthMiddleware(tokenSvc)

			c, rec := newAuthContext(tt.authorization)
			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		wantCode int
	}{
		{name: "no roles on context", roles: nil, wantCode: http.StatusForbidden},
		{name: "other role", roles: []string{"viewer"}, wantCode: http.StatusForbidden},
		{name: "required role", roles: []string{"viewer", "operator"}, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

			c, rec := newAuthContext("")
			if tt.roles != nil {
				c.Set(keyRoles, tt.roles)
			}

			err := m.RequireRole("operator")(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
