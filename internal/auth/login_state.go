package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	loginStateCookieName = "gospors_login"
	loginStateMaxAge     = 10 * time.Minute
)

// LoginState survives the round-trip to the identity provider.
type LoginState struct {
	State    string
	Nonce    string
	ReturnTo string
	IssuedAt time.Time
}

// LoginStates stores LoginState in a short-lived signed cookie.
type LoginStates struct {
	cookie *securecookie.SecureCookie
	secure bool
}

// NewLoginStates creates a login state cookie codec from the session secret.
func NewLoginStates(secret string, secure bool) *LoginStates {
	hashKey, blockKey := cookieKeys(secret)
	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(loginStateMaxAge.Seconds()))

	return &LoginStates{cookie: codec, secure: secure}
}

// Begin creates a fresh state/nonce pair for returnTo and writes the cookie.
func (l *LoginStates) Begin(w http.ResponseWriter, returnTo string) (LoginState, error) {
	state, err := randomString(32)
	if err != nil {
		return LoginState{}, fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(32)
	if err != nil {
		return LoginState{}, fmt.Errorf("generate nonce: %w", err)
	}

	st := LoginState{
		State:    state,
		Nonce:    nonce,
		ReturnTo: SanitizeReturnURL(returnTo),
		IssuedAt: time.Now(),
	}

	encoded, err := l.cookie.Encode(loginStateCookieName, st)
	if err != nil {
		return LoginState{}, fmt.Errorf("encode login state: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     loginStateCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(loginStateMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   l.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return st, nil
}

// Take reads and clears the login state cookie. The cookie is single-use.
func (l *LoginStates) Take(w http.ResponseWriter, r *http.Request) (LoginState, error) {
	http.SetCookie(w, &http.Cookie{
		Name:     loginStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   l.secure,
		SameSite: http.SameSiteLaxMode,
	})

	cookie, err := r.Cookie(loginStateCookieName)
	if err != nil {
		return LoginState{}, fmt.Errorf("%w: missing cookie", ErrInvalidState)
	}

	var st LoginState
	if err := l.cookie.Decode(loginStateCookieName, cookie.Value, &st); err != nil {
		return LoginState{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if st.State == "" {
		return LoginState{}, fmt.Errorf("%w: empty state", ErrInvalidState)
	}

	return st, nil
}

// SanitizeReturnURL keeps only same-site relative paths. Anything else becomes "/".
// The mobile-menu flag is dropped so the visitor comes back to a closed menu.
func SanitizeReturnURL(raw string) string {
	if raw == "" {
		return "/"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "/"
	}
	if u.Scheme != "" || u.Host != "" || u.User != nil {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, `\`) {
		return "/"
	}

	q := u.Query()
	q.Del("menu")
	u.RawQuery = q.Encode()
	u.Fragment = ""

	return u.RequestURI()
}

// randomString generates a URL-safe random string of exact length.
func randomString(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be positive")
	}
	b := make([]byte, (length*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	return s[:length], nil
}
