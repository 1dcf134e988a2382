package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthboard/healthboard/internal/platform/auth"
)

const handlerTestSecret = "handler-test-secret"

func newHandlerUnderTest(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	g, _ := newTestGate(t, staticDirectory{})
	return NewHandler(g, handlerTestSecret), echo.New()
}

func postLogin(t *testing.T, h *Handler, e *echo.Echo, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Login(c)
}

func TestHandler_Login_Success(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	rec, err := postLogin(t, h, e, `{"email":"admin@minsa.gov.ao","secret":"admin123","role":"national"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Principal.ID != "nat_001" {
		t.Errorf("principal = %+v", resp.Principal)
	}

	// The issued token round-trips through the auth middleware contract.
	claims, err := auth.ParseToken(handlerTestSecret, resp.Token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Subject != "nat_001" || claims.Role != auth.RoleNational {
		t.Errorf("claims = %+v", claims)
	}
}

func TestHandler_Login_HospitalToken(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	rec, err := postLogin(t, h, e, `{"email":"hospital.luanda@saude.gov.ao","secret":"hospital123","role":"hospital"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	claims, err := auth.ParseToken(handlerTestSecret, resp.Token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.HospitalID != "HCL001" {
		t.Errorf("hospital id claim = %q, want HCL001", claims.HospitalID)
	}
}

func TestHandler_Login_WrongCredentials(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	_, err := postLogin(t, h, e, `{"email":"admin@minsa.gov.ao","secret":"nope","role":"national"}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandler_Login_BadRequest(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"secret":"x","role":"national"}`},
		{"missing secret", `{"email":"a@b","role":"national"}`},
		{"unknown role", `{"email":"a@b","secret":"x","role":"province"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postLogin(t, h, e, tt.body)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}

func TestHandler_Me(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	// Anonymous: no active session.
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for anonymous, got %v", err)
	}

	if _, err := postLogin(t, h, e, `{"email":"admin@minsa.gov.ao","secret":"admin123","role":"national"}`); err != nil {
		t.Fatalf("login: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var p Principal
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.ID != "nat_001" {
		t.Errorf("me = %+v", p)
	}
}

func TestHandler_Logout(t *testing.T) {
	h, e := newHandlerUnderTest(t)

	if _, err := postLogin(t, h, e, `{"email":"admin@minsa.gov.ao","secret":"admin123","role":"national"}`); err != nil {
		t.Fatalf("login: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if h.gate.State() != StateAnonymous {
		t.Errorf("state = %s, want anonymous", h.gate.State())
	}
}
