package auth

import "errors"

// Auth errors
var (
	ErrNoSession        = errors.New("no session")
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidState     = errors.New("invalid login state")
	ErrUnknownProvider  = errors.New("unknown identity provider")
)
