// Package layout renders the site chrome (navigation, mobile menu, footer)
// around page content and decides who is looking at it.
package layout

import "github.com/gospors/gospors/internal/domain"

// Viewer is who a page is rendered for: Anonymous or Authenticated.
type Viewer interface {
	viewer()
}

// Anonymous is a visitor without a usable session.
type Anonymous struct{}

// Authenticated is a visitor with a session and a loaded profile.
type Authenticated struct {
	Profile *domain.User
}

func (Anonymous) viewer()     {}
func (Authenticated) viewer() {}

// Profile returns the profile of an authenticated viewer, or nil.
func Profile(v Viewer) *domain.User {
	switch v := v.(type) {
	case Authenticated:
		return v.Profile
	case Anonymous:
		return nil
	}
	return nil
}

// IsAuthenticated reports whether v carries a profile.
func IsAuthenticated(v Viewer) bool {
	return Profile(v) != nil
}
