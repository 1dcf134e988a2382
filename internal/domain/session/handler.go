package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthboard/healthboard/internal/platform/auth"
	"github.com/healthboard/healthboard/internal/platform/telemetry"
)

// SessionTokenTTL bounds how long an issued session token stays valid.
const SessionTokenTTL = 12 * time.Hour

type Handler struct {
	gate   *Gate
	secret string
}

func NewHandler(gate *Gate, tokenSecret string) *Handler {
	return &Handler{gate: gate, secret: tokenSecret}
}

// RegisterRoutes wires the session endpoints. Login is public and takes
// optional route middleware (the server attaches a throttle there); the
// rest require an authenticated principal.
func (h *Handler) RegisterRoutes(e *echo.Echo, authed *echo.Group, loginMiddleware ...echo.MiddlewareFunc) {
	e.POST("/auth/login", h.Login, loginMiddleware...)
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/auth/me", h.Me)
}

type loginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
	Role   string `json:"role"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Secret == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and secret are required")
	}
	if req.Role != auth.RoleHospital && req.Role != auth.RoleNational {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be hospital or national")
	}

	p, err := h.gate.Login(c.Request().Context(), req.Email, req.Secret, req.Role)
	if err != nil {
		telemetry.LoginAttempts.WithLabelValues("failure", req.Role).Inc()
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// client went away mid-login
			return echo.NewHTTPError(http.StatusRequestTimeout, "login aborted")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := auth.IssueToken(h.secret, p.ID, p.Role, p.HospitalID, SessionTokenTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	telemetry.LoginAttempts.WithLabelValues("success", req.Role).Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Principal: p})
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.gate.Logout(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	p, ok := h.gate.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return c.JSON(http.StatusOK, p)
}
