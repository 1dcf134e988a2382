// Package session implements the identity gate for the healthboard
// dashboard: credential validation against the static national directory
// and the hospital registry, a persisted single-slot session, and the
// login/logout HTTP endpoints.
package session

import "errors"

// ErrInvalidCredentials is returned on any credential mismatch. It is
// deliberately generic: it never reveals whether the email or the secret
// was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// State is the gate's authentication state.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Principal is the authenticated identity for the current session.
type Principal struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"display_name"`
	Role         string   `json:"role"` // "hospital" or "national"
	HospitalID   string   `json:"hospital_id,omitempty"`
	HospitalName string   `json:"hospital_name,omitempty"`
	Permissions  []string `json:"permissions"`
}
