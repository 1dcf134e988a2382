package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	raw, err := IssueToken(testSecret, "HCL001", RoleHospital, "HCL001", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := ParseToken(testSecret, raw)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "HCL001" {
		t.Errorf("subject = %s, want HCL001", claims.Subject)
	}
	if claims.Role != RoleHospital || claims.HospitalID != "HCL001" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw, err := IssueToken(testSecret, "nat_001", RoleNational, "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := ParseToken("other-secret", raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	raw, err := IssueToken(testSecret, "nat_001", RoleNational, "", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := ParseToken(testSecret, raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func callMiddleware(t *testing.T, authorization string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	err := Middleware(testSecret)(handler)(c)
	return c, err
}

func TestMiddleware_ValidToken(t *testing.T) {
	raw, err := IssueToken(testSecret, "nat_001", RoleNational, "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	c, err := callMiddleware(t, "Bearer "+raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if PrincipalIDFromContext(c) != "nat_001" {
		t.Errorf("principal id = %q", PrincipalIDFromContext(c))
	}
	if RoleFromContext(c) != RoleNational {
		t.Errorf("role = %q", RoleFromContext(c))
	}
	if HospitalIDFromContext(c) != "" {
		t.Errorf("hospital id = %q, want empty", HospitalIDFromContext(c))
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	_, err := callMiddleware(t, "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestMiddleware_NotBearer(t *testing.T) {
	_, err := callMiddleware(t, "Basic dXNlcjpwYXNz")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestMiddleware_BadToken(t *testing.T) {
	_, err := callMiddleware(t, "Bearer garbage")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	run := func(role string, required ...string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)
		return RequireRole(required...)(handler)(c)
	}

	if err := run(RoleNational, RoleNational); err != nil {
		t.Errorf("national on national route: %v", err)
	}
	if err := run(RoleHospital, RoleHospital, RoleNational); err != nil {
		t.Errorf("hospital on shared route: %v", err)
	}
	assertHTTPStatus(t, run(RoleHospital, RoleNational), http.StatusForbidden)
	assertHTTPStatus(t, run("", RoleNational), http.StatusForbidden)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != want {
		t.Errorf("status = %d, want %d", httpErr.Code, want)
	}
}
