// Package route names the site's pages and builds their URLs.
package route

import "github.com/gospors/gospors/internal/domain"

// Page identifies a page of the site.
type Page string

const (
	Home             Page = "Home"
	Discover         Page = "Discover"
	AthleteDashboard Page = "AthleteDashboard"
	AthleteSignup    Page = "AthleteSignup"
)

// NavEntry is one item of the top navigation.
type NavEntry struct {
	Label string
	Page  Page
}

var navEntries = []NavEntry{
	{Label: "Home", Page: Home},
	{Label: "Discover", Page: Discover},
}

// NavEntries returns the fixed, ordered navigation entries.
func NavEntries() []NavEntry {
	out := make([]NavEntry, len(navEntries))
	copy(out, navEntries)
	return out
}

// NotFoundPath is where identifiers without a valid slug lead. No route
// serves it, so it renders the not-found page instead of colliding with Home.
const NotFoundPath = "/not-found"

// CreatePageURL returns the path of the named page.
func CreatePageURL(page Page) string {
	if page == Home {
		return "/"
	}
	slug := domain.GenerateSlug(string(page))
	if err := domain.ValidateSlug(slug); err != nil {
		return NotFoundPath
	}
	return "/" + slug
}

// Pages lists every routable page.
func Pages() []Page {
	return []Page{Home, Discover, AthleteDashboard, AthleteSignup}
}

// Paths of the auth endpoints the shell links to.
const (
	LoginPath    = "/login"
	LogoutPath   = "/logout"
	CallbackPath = "/auth/callback"

	// ReturnToParam carries the page to come back to after login.
	ReturnToParam = "return_to"
)
