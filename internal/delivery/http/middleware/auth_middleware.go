// Package middleware contains echo middleware specific to the HTTP API.
package middleware

import (
	"slices"
	"strings"

	"pushrelay/internal/delivery/http/response"
	"pushrelay/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	keySubject = "subject"
	keyRoles   = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keySubject, claims.Subject)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks the roles set by Authenticate, which must run first.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// GetSubject returns the authenticated token subject.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(keySubject).(string)

	return subject, ok && subject != ""
}

// GetRoles returns the roles of the authenticated token.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(keyRoles).([]string)

	return roles, ok
}
