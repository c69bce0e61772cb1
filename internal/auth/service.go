package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/metrics"
)

//go:generate go run go.uber.org/mock/mockgen -package=authmock -destination=authmock/client.go github.com/gospors/gospors/internal/auth Client

// Client is the authentication collaborator of the site shell.
type Client interface {
	// IsAuthenticated reports whether the request carries a live session.
	IsAuthenticated(r *http.Request) (bool, error)
	// Me returns the profile of the session user.
	Me(r *http.Request) (*domain.User, error)
	// RedirectToLogin starts the login flow; the visitor comes back to returnURL.
	RedirectToLogin(w http.ResponseWriter, r *http.Request, returnURL string)
	// Logout ends the session and sends the browser to destination.
	Logout(w http.ResponseWriter, r *http.Request, destination string)
	// HandleCallback completes the login flow started by RedirectToLogin.
	HandleCallback(w http.ResponseWriter, r *http.Request)
}

// UserDirectory persists the profiles of logged-in visitors.
type UserDirectory interface {
	Upsert(ctx context.Context, id domain.Identity) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements Client on top of a session store, an identity provider
// and the user directory.
type Service struct {
	sessions Store
	states   *LoginStates
	provider IdentityProvider
	users    UserDirectory
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ Client = (*Service)(nil)

// NewService wires the auth service. metrics may be nil.
func NewService(
	sessions Store,
	states *LoginStates,
	provider IdentityProvider,
	users UserDirectory,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		sessions: sessions,
		states:   states,
		provider: provider,
		users:    users,
		metrics:  m,
		logger:   logger,
	}
}

// IsAuthenticated implements Client.
func (s *Service) IsAuthenticated(r *http.Request) (bool, error) {
	_, err := s.sessions.Get(r)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrSessionExpired):
		return false, nil
	default:
		return false, err
	}
}

// Me implements Client.
func (s *Service) Me(r *http.Request) (*domain.User, error) {
	sess, err := s.sessions.Get(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	user, err := s.users.GetByID(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// RedirectToLogin implements Client.
func (s *Service) RedirectToLogin(w http.ResponseWriter, r *http.Request, returnURL string) {
	st, err := s.states.Begin(w, returnURL)
	if err != nil {
		s.logger.Error("failed to start login", "error", err)
		http.Error(w, "could not start login", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, s.provider.AuthCodeURL(st.State, st.Nonce), http.StatusTemporaryRedirect)
}

// HandleCallback implements Client.
func (s *Service) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	provider := s.provider.Name()

	fail := func(code string, args ...any) {
		s.logger.Error("login failed", append([]any{"reason", code, "provider", provider}, args...)...)
		s.metrics.Login(provider, code)
		http.Redirect(w, r, "/?"+url.Values{"auth_error": {code}}.Encode(), http.StatusSeeOther)
	}

	st, err := s.states.Take(w, r)
	if err != nil {
		fail("invalid_state", "error", err)
		return
	}
	if q.Get("state") != st.State {
		fail("invalid_state", "error", "state mismatch")
		return
	}

	if errMsg := q.Get("error"); errMsg != "" {
		fail("provider_error", "error", errMsg)
		return
	}

	identity, err := s.provider.Exchange(ctx, q.Get("code"), st.Nonce)
	if err != nil {
		fail("token_exchange", "error", err)
		return
	}
	if err := identity.Validate(); err != nil {
		fail("identity", "error", err)
		return
	}

	user, err := s.users.Upsert(ctx, identity)
	if err != nil {
		fail("database", "error", err)
		return
	}

	session := &SessionData{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Provider: user.Provider,
	}
	if err := s.sessions.Set(w, r, session); err != nil {
		fail("session", "error", err)
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID, "provider", provider)
	s.metrics.Login(provider, "success")
	http.Redirect(w, r, st.ReturnTo, http.StatusSeeOther)
}

// Logout implements Client.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request, destination string) {
	if err := s.sessions.Clear(w, r); err != nil {
		s.logger.Warn("failed to clear session", "error", err)
	}
	s.metrics.Logout()

	target := s.provider.EndSessionURL(destination)
	if target == "" {
		target = destination
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
