package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User errors
var (
	ErrIdentityMissingProvider = errors.New("identity provider is required")
	ErrIdentityMissingSubject  = errors.New("identity subject is required")
	ErrIdentityMissingContact  = errors.New("identity must carry an email or a name")
	ErrUserNotFound            = errors.New("user not found")
)

// User is a registered Gospors member (athlete or sponsor).
type User struct {
	ID        uuid.UUID
	Provider  string
	Subject   string
	Email     string
	FullName  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the name shown in the navigation, falling back to "User".
func (u *User) DisplayName() string {
	if u == nil || u.FullName == "" {
		return "User"
	}
	return u.FullName
}

// Identity is what an identity provider asserts about a visitor after login.
type Identity struct {
	Provider  string
	Subject   string
	Email     string
	FullName  string
	AvatarURL string
}

// Validate checks that the identity can be turned into a user record.
func (i Identity) Validate() error {
	if i.Provider == "" {
		return ErrIdentityMissingProvider
	}
	if i.Subject == "" {
		return ErrIdentityMissingSubject
	}
	if i.Email == "" && i.FullName == "" {
		return ErrIdentityMissingContact
	}
	return nil
}
