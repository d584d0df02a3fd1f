package dashboardclient

import (
	"context"
	"sync"

	"github.com/vfg2006/social-insights-api/internal/domain"
	"golang.org/x/oauth2"
)

// Identity is what a successful sign-in yields.
type Identity struct {
	Token   string
	Profile domain.Profile
}

// Authenticate signs a user in.
type Authenticate func(ctx context.Context) (Identity, error)

// Session holds the signed-in user's token and profile for the clients that
// need them. It is safe for concurrent use.
type Session struct {
	authenticate Authenticate

	mu       sync.RWMutex
	attempt  *signIn
	identity *Identity
}

// signIn is one resolution of the session; done closes once err or identity
// is set.
type signIn struct {
	done     chan struct{}
	identity *Identity
	err      error
}

func NewSession(authenticate Authenticate) *Session {
	return &Session{authenticate: authenticate}
}

// Init signs in once. Every caller, concurrent or later, gets the result of
// that single attempt; ctx only bounds how long this caller waits. After
// SignOut the next Init starts a fresh sign-in.
func (s *Session) Init(ctx context.Context) (*Identity, error) {
	s.mu.Lock()
	a := s.attempt
	if a == nil {
		a = &signIn{done: make(chan struct{})}
		s.attempt = a
		go s.resolve(context.WithoutCancel(ctx), a)
	}
	s.mu.Unlock()

	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if a.err != nil {
		return nil, a.err
	}
	identity := *a.identity
	return &identity, nil
}

func (s *Session) resolve(ctx context.Context, a *signIn) {
	identity, err := s.authenticate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(a.done)

	if err != nil {
		a.err = err
		return
	}
	a.identity = &identity

	// A SignOut during the attempt wins; the caller still sees its result.
	if s.attempt == a {
		s.identity = &identity
	}
}

// SignOut drops the token. Calls fail with ErrNotAuthenticated until Init
// signs in again.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.attempt = nil
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Token != ""
}

// Token implements oauth2.TokenSource.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil || s.identity.Token == "" {
		return nil, ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: s.identity.Token, TokenType: "Bearer"}, nil
}

// HasAnyRole reports whether the signed-in user holds one of roles.
func (s *Session) HasAnyRole(roles ...domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return false
	}
	held, _ := domain.ParseRoleClaimsLenient(s.identity.Profile.CustomClaims)
	return domain.HasAnyRole(held, roles...)
}
