package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospors/gospors/internal/auth"
	"github.com/gospors/gospors/internal/database"
	"github.com/gospors/gospors/internal/domain"
)

type testEnv struct {
	svc   *auth.Service
	users *database.MemoryUsers
	store *auth.CookieStore
}

func newTestService(t *testing.T, provider auth.IdentityProvider) testEnv {
	t.Helper()

	if provider == nil {
		provider = newDevProvider(t)
	}

	store := auth.NewCookieStore(testSecret, time.Hour, false)
	users := database.NewMemoryUsers()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return testEnv{
		svc:   auth.NewService(store, auth.NewLoginStates(testSecret, false), provider, users, nil, logger),
		users: users,
		store: store,
	}
}

func newDevProvider(t *testing.T) *auth.DevProvider {
	t.Helper()
	dev, err := auth.NewDevProvider("Maya Lopez", "maya@example.com")
	require.NoError(t, err)
	return dev
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// login runs the whole redirect/callback round-trip and returns the session cookie.
func login(t *testing.T, env testEnv, returnTo string) (*http.Response, *http.Cookie) {
	t.Helper()

	w := httptest.NewRecorder()
	env.svc.RedirectToLogin(w, httptest.NewRequest("GET", "/login", nil), returnTo)
	resp := w.Result()
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)

	loginCookie := findCookie(resp, "gospors_login")
	require.NotNil(t, loginCookie)

	callback := httptest.NewRequest("GET", resp.Header.Get("Location"), nil)
	callback.AddCookie(loginCookie)

	w = httptest.NewRecorder()
	env.svc.HandleCallback(w, callback)
	resp = w.Result()

	return resp, findCookie(resp, auth.SessionCookieName)
}

func TestService_LoginRoundTrip(t *testing.T) {
	env := newTestService(t, nil)

	resp, sessionCookie := login(t, env, "/discover?menu=open")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/discover", resp.Header.Get("Location"))
	require.NotNil(t, sessionCookie)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie)

	ok, err := env.svc.IsAuthenticated(req)
	require.NoError(t, err)
	assert.True(t, ok)

	me, err := env.svc.Me(req)
	require.NoError(t, err)
	assert.Equal(t, "Maya Lopez", me.FullName)
	assert.Equal(t, "maya@example.com", me.Email)
	assert.Equal(t, "dev", me.Provider)
}

func TestService_Anonymous(t *testing.T) {
	env := newTestService(t, nil)
	req := httptest.NewRequest("GET", "/", nil)

	ok, err := env.svc.IsAuthenticated(req)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = env.svc.Me(req)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestService_TamperedSessionIsAnError(t *testing.T) {
	env := newTestService(t, nil)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})

	ok, err := env.svc.IsAuthenticated(req)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestService_MeUnknownUser(t *testing.T) {
	env := newTestService(t, nil)

	w := httptest.NewRecorder()
	require.NoError(t, env.store.Set(w, httptest.NewRequest("GET", "/", nil), &auth.SessionData{UserID: uuid.New()}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(findCookie(w.Result(), auth.SessionCookieName))

	_, err := env.svc.Me(req)
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestService_RedirectToLoginSanitizesReturnURL(t *testing.T) {
	env := newTestService(t, nil)

	resp, _ := login(t, env, "https://evil.example.com/steal")
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestService_CallbackStateMismatch(t *testing.T) {
	env := newTestService(t, nil)

	w := httptest.NewRecorder()
	env.svc.RedirectToLogin(w, httptest.NewRequest("GET", "/login", nil), "/")
	loginCookie := findCookie(w.Result(), "gospors_login")
	require.NotNil(t, loginCookie)

	req := httptest.NewRequest("GET", "/auth/callback?code=dev&state=forged", nil)
	req.AddCookie(loginCookie)

	w = httptest.NewRecorder()
	env.svc.HandleCallback(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?auth_error=invalid_state", resp.Header.Get("Location"))
	assert.Nil(t, findCookie(resp, auth.SessionCookieName))
}

func TestService_CallbackWithoutStateCookie(t *testing.T) {
	env := newTestService(t, nil)

	w := httptest.NewRecorder()
	env.svc.HandleCallback(w, httptest.NewRequest("GET", "/auth/callback?code=dev&state=x", nil))

	assert.Equal(t, "/?auth_error=invalid_state", w.Result().Header.Get("Location"))
}

type failingProvider struct {
	*auth.DevProvider
}

func (failingProvider) Exchange(context.Context, string, string) (domain.Identity, error) {
	return domain.Identity{}, errors.New("upstream down")
}

func TestService_CallbackExchangeFailure(t *testing.T) {
	env := newTestService(t, failingProvider{newDevProvider(t)})

	resp, sessionCookie := login(t, env, "/")
	assert.Equal(t, "/?auth_error=token_exchange", resp.Header.Get("Location"))
	assert.Nil(t, sessionCookie)
}

func TestService_CallbackProviderError(t *testing.T) {
	env := newTestService(t, nil)

	w := httptest.NewRecorder()
	env.svc.RedirectToLogin(w, httptest.NewRequest("GET", "/login", nil), "/")
	resp := w.Result()

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/auth/callback?error=access_denied&state="+loc.Query().Get("state"), nil)
	req.AddCookie(findCookie(resp, "gospors_login"))

	w = httptest.NewRecorder()
	env.svc.HandleCallback(w, req)
	assert.Equal(t, "/?auth_error=provider_error", w.Result().Header.Get("Location"))
}

func TestService_Logout(t *testing.T) {
	env := newTestService(t, nil)
	_, sessionCookie := login(t, env, "/")
	require.NotNil(t, sessionCookie)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(sessionCookie)

	w := httptest.NewRecorder()
	env.svc.Logout(w, req, "/")

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	cleared := findCookie(resp, auth.SessionCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

type endSessionProvider struct {
	*auth.DevProvider
}

func (endSessionProvider) EndSessionURL(dest string) string {
	return "https://id.example.com/logout?to=" + url.QueryEscape(dest)
}

func TestService_LogoutUsesProviderEndSession(t *testing.T) {
	env := newTestService(t, endSessionProvider{newDevProvider(t)})

	w := httptest.NewRecorder()
	env.svc.Logout(w, httptest.NewRequest("POST", "/logout", nil), "/")

	assert.Equal(t, "https://id.example.com/logout?to=%2F", w.Result().Header.Get("Location"))
}
