package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Context keys set by Middleware.
const (
	ctxPrincipalID = "principal_id"
	ctxRole        = "role"
	ctxHospitalID  = "hospital_id"
)

// Middleware parses the Bearer session token and stores the principal's
// identity on the request context. Requests without a valid token are
// rejected with 401.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}
			claims, err := ParseToken(secret, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			c.Set(ctxPrincipalID, claims.Subject)
			c.Set(ctxRole, claims.Role)
			c.Set(ctxHospitalID, claims.HospitalID)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the listed roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			has := RoleFromContext(c)
			for _, required := range roles {
				if has == required {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// PrincipalIDFromContext returns the authenticated principal id, or "".
func PrincipalIDFromContext(c echo.Context) string {
	id, _ := c.Get(ctxPrincipalID).(string)
	return id
}

// RoleFromContext returns the authenticated role, or "".
func RoleFromContext(c echo.Context) string {
	role, _ := c.Get(ctxRole).(string)
	return role
}

// HospitalIDFromContext returns the managed facility id for hospital
// principals, or "".
func HospitalIDFromContext(c echo.Context) string {
	id, _ := c.Get(ctxHospitalID).(string)
	return id
}
