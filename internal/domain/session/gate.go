package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/healthboard/healthboard/internal/domain/registry"
	"github.com/healthboard/healthboard/internal/platform/auth"
	"github.com/healthboard/healthboard/internal/platform/store"
)

// HospitalDirectory is the read-only view of the hospital registry the gate
// uses for dynamically registered credentials. The gate never writes
// hospital records.
type HospitalDirectory interface {
	List() []registry.Hospital
}

// DefaultLoginDelay simulates the latency of a remote credential check.
const DefaultLoginDelay = time.Second

// Gate validates credentials, owns the current-session principal slot and
// tracks the authentication state machine (anonymous, authenticating,
// authenticated).
type Gate struct {
	st        store.Store
	hospitals HospitalDirectory
	delay     time.Duration

	mu        sync.Mutex
	state     State
	principal *Principal
}

// NewGate restores any previously persisted principal verbatim; no
// revalidation is performed against the current credential sources. A store
// error other than an absent slot is surfaced.
func NewGate(st store.Store, hospitals HospitalDirectory, delay time.Duration) (*Gate, error) {
	if delay <= 0 {
		delay = DefaultLoginDelay
	}
	g := &Gate{st: st, hospitals: hospitals, delay: delay, state: StateAnonymous}

	var p Principal
	err := st.Load(store.SlotPrincipal, &p)
	switch {
	case err == nil:
		g.principal = &p
		g.state = StateAuthenticated
	case errors.Is(err, store.ErrSlotNotFound):
		// first run, stay anonymous
	default:
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return g, nil
}

// State reports the current authentication state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Current returns the active principal, if any.
func (g *Gate) Current() (Principal, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.principal == nil {
		return Principal{}, false
	}
	return *g.principal, true
}

// Login validates the credentials for the requested role and, on success,
// persists the resulting principal as the current session. The artificial
// delay is cancellable through ctx; abandoning the attempt leaves the gate
// exactly as it was. Concurrent calls serialize on the credential check,
// last caller wins.
//
// Lookup order: national logins match the static directory only; hospital
// logins match the static seed credentials first, then the live hospital
// collection. Exact email and secret match, first hit wins.
func (g *Gate) Login(ctx context.Context, email, secret, role string) (Principal, error) {
	g.mu.Lock()
	prev := g.state
	g.state = StateAuthenticating
	g.mu.Unlock()

	// Simulated network latency; must not block other callers.
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		g.restoreState(prev)
		return Principal{}, fmt.Errorf("login aborted: %w", ctx.Err())
	}

	p, ok := g.match(email, secret, role)
	if !ok {
		// Nothing persisted; a previously authenticated session stays
		// authenticated in memory and its slot is untouched.
		g.restoreState(prev)
		return Principal{}, ErrInvalidCredentials
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.st.Save(store.SlotPrincipal, p); err != nil {
		g.state = prev
		return Principal{}, fmt.Errorf("persist session: %w", err)
	}
	g.principal = &p
	g.state = StateAuthenticated
	return p, nil
}

// Logout clears the persisted principal slot and returns to anonymous.
func (g *Gate) Logout() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.st.Delete(store.SlotPrincipal); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	g.principal = nil
	g.state = StateAnonymous
	return nil
}

func (g *Gate) restoreState(prev State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.principal != nil && prev == StateAuthenticated {
		g.state = StateAuthenticated
		return
	}
	g.state = StateAnonymous
}

func (g *Gate) match(email, secret, role string) (Principal, bool) {
	switch role {
	case auth.RoleNational:
		for _, u := range nationalDirectory {
			if u.Email == email && u.Secret == secret {
				return Principal{
					ID:          u.ID,
					Email:       u.Email,
					DisplayName: u.DisplayName,
					Role:        auth.RoleNational,
					Permissions: u.Permissions,
				}, true
			}
		}
	case auth.RoleHospital:
		for _, h := range seedHospitalCredentials {
			if h.Email == email && h.Secret == secret {
				return hospitalPrincipal(h.ID, h.Name, h.Email), true
			}
		}
		for _, h := range g.hospitals.List() {
			if h.LoginEmail == email && h.LoginSecret == secret {
				return hospitalPrincipal(h.ID, h.Name, h.LoginEmail), true
			}
		}
	}
	return Principal{}, false
}
