package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/gospors/gospors/internal/domain"
)

// DevProvider short-circuits the OAuth flow for local development by
// redirecting straight back to our own callback. Exchange ignores the code
// and returns the configured identity.
type DevProvider struct {
	identity domain.Identity
}

var _ IdentityProvider = (*DevProvider)(nil)

// NewDevProvider constructs a dev provider for the given name and email.
func NewDevProvider(name, email string) (*DevProvider, error) {
	if email == "" {
		return nil, errors.New("dev auth: email is required")
	}
	return &DevProvider{
		identity: domain.Identity{
			Provider: "dev",
			Subject:  email,
			Email:    email,
			FullName: name,
		},
	}, nil
}

// Name implements IdentityProvider.
func (p *DevProvider) Name() string { return "dev" }

// AuthCodeURL points at our own callback.
func (p *DevProvider) AuthCodeURL(state, _ string) string {
	return "/auth/callback?" + url.Values{"code": {"dev"}, "state": {state}}.Encode()
}

// Exchange implements IdentityProvider.
func (p *DevProvider) Exchange(context.Context, string, string) (domain.Identity, error) {
	return p.identity, nil
}

// EndSessionURL implements IdentityProvider.
func (p *DevProvider) EndSessionURL(string) string { return "" }
