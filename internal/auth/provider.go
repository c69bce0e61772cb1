package auth

import (
	"context"

	"github.com/gospors/gospors/internal/domain"
)

// IdentityProvider performs the external half of the login flow.
type IdentityProvider interface {
	// Name is stored with the user record, e.g. "github".
	Name() string
	// AuthCodeURL is where the browser is sent to log in.
	AuthCodeURL(state, nonce string) string
	// Exchange trades the callback code for the visitor's identity.
	Exchange(ctx context.Context, code, nonce string) (domain.Identity, error)
	// EndSessionURL returns the provider logout URL that eventually lands on
	// destination, or "" when the provider has none.
	EndSessionURL(destination string) string
}
