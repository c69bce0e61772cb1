package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session data in Redis; the cookie only carries a signed session ID.
type RedisStore struct {
	client redis.UniversalClient
	cookie *securecookie.SecureCookie
	prefix string
	name   string
	maxAge int
	secure bool
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, secret string, maxAge time.Duration, secure bool) *RedisStore {
	seconds := int(maxAge.Seconds())

	return &RedisStore{
		client: client,
		cookie: sessionCodec(secret, seconds),
		prefix: "gospors:session:",
		name:   SessionCookieName,
		maxAge: seconds,
		secure: secure,
	}
}

func (s *RedisStore) sessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoSession
		}
		return "", err
	}

	var id string
	if err := s.cookie.Decode(s.name, cookie.Value, &id); err != nil {
		return "", fmt.Errorf("decode session cookie: %w", err)
	}
	return id, nil
}

// Get loads the session referenced by the request cookie.
func (s *RedisStore) Get(r *http.Request) (*SessionData, error) {
	id, err := s.sessionID(r)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(r.Context(), s.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// Redis TTL normally evicts first
	if time.Now().After(data.ExpiresAt) {
		if err := s.client.Del(r.Context(), s.prefix+id).Err(); err != nil {
			return nil, fmt.Errorf("cleanup expired session: %w", err)
		}
		return nil, ErrSessionExpired
	}

	return &data, nil
}

// Set saves the session under a fresh ID and points the cookie at it.
func (s *RedisStore) Set(w http.ResponseWriter, r *http.Request, data *SessionData) error {
	stampSession(data, s.maxAge)

	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// A new ID on every login; drop the previous one if there was any.
	if oldID, err := s.sessionID(r); err == nil {
		if err := s.client.Del(r.Context(), s.prefix+oldID).Err(); err != nil {
			return fmt.Errorf("delete previous session: %w", err)
		}
	}

	id := uuid.NewString()
	if err := s.client.Set(r.Context(), s.prefix+id, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	encoded, err := s.cookie.Encode(s.name, id)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	http.SetCookie(w, sessionCookie(s.name, encoded, s.maxAge, s.secure))
	return nil
}

// Clear deletes the stored session and expires the cookie.
func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, sessionCookie(s.name, "", -1, s.secure))

	id, err := s.sessionID(r)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil
		}
		return err
	}

	if err := s.client.Del(r.Context(), s.prefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
