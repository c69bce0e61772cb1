package auth

import (
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(SessionData{})
	gob.Register(LoginState{})
}

// SessionCookieName is the cookie that identifies a visitor's session.
const SessionCookieName = "gospors_session"

// SessionData holds the user session information.
type SessionData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store loads and persists sessions for a request.
type Store interface {
	// Get returns ErrNoSession when the request carries no session and
	// ErrSessionExpired when it carries a stale one.
	Get(r *http.Request) (*SessionData, error)
	Set(w http.ResponseWriter, r *http.Request, data *SessionData) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// cookieKeys splits a 64-byte secret into securecookie hash and block keys.
func cookieKeys(secret string) (hashKey, blockKey []byte) {
	return []byte(secret)[:32], []byte(secret)[32:64]
}

// sessionCodec signs and encrypts session cookies. Its own timestamp limit sits
// one minute past the session lifetime so that ExpiresAt decides expiry.
func sessionCodec(secret string, maxAge int) *securecookie.SecureCookie {
	hashKey, blockKey := cookieKeys(secret)
	codec := securecookie.New(hashKey, blockKey)
	if maxAge > 0 {
		codec.MaxAge(maxAge + 60)
	}
	return codec
}

// CookieStore keeps the whole session in an encrypted, signed cookie.
type CookieStore struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

var _ Store = (*CookieStore)(nil)

// NewCookieStore creates a new cookie session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewCookieStore(secret string, maxAge time.Duration, secure bool) *CookieStore {
	seconds := int(maxAge.Seconds())

	return &CookieStore{
		cookie: sessionCodec(secret, seconds),
		name:   SessionCookieName,
		maxAge: seconds,
		secure: secure,
	}
}

// Get retrieves the session data from the request cookie.
func (s *CookieStore) Get(r *http.Request) (*SessionData, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var data SessionData
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, fmt.Errorf("decode session cookie: %w", err)
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	return &data, nil
}

// Set stores the session data in a cookie.
func (s *CookieStore) Set(w http.ResponseWriter, _ *http.Request, data *SessionData) error {
	stampSession(data, s.maxAge)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	http.SetCookie(w, sessionCookie(s.name, encoded, s.maxAge, s.secure))
	return nil
}

// Clear removes the session cookie.
func (s *CookieStore) Clear(w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, sessionCookie(s.name, "", -1, s.secure))
	return nil
}

func stampSession(data *SessionData, maxAge int) {
	now := time.Now()
	data.CreatedAt = now
	data.ExpiresAt = now.Add(time.Duration(maxAge) * time.Second)
}

func sessionCookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
