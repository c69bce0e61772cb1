package layout

import (
	"net/http"
	"net/url"
)

// MenuParam is the query parameter carrying the mobile menu state.
const MenuParam = "menu"

// MenuState is the open/closed state of the mobile menu for one render.
type MenuState bool

const (
	MenuClosed MenuState = false
	MenuOpen   MenuState = true
)

// Toggle returns the opposite state.
func (m MenuState) Toggle() MenuState { return !m }

// IsOpen reports whether the mobile menu is shown.
func (m MenuState) IsOpen() bool { return bool(m) }

// MenuFromRequest reads the menu state from the request URL.
func MenuFromRequest(r *http.Request) MenuState {
	return MenuState(r.URL.Query().Get(MenuParam) == "open")
}

// WithMenu returns the request URI of u rendered with the given menu state.
func WithMenu(u *url.URL, state MenuState) string {
	out := url.URL{Path: u.Path}
	if out.Path == "" {
		out.Path = "/"
	}

	q := u.Query()
	if state.IsOpen() {
		q.Set(MenuParam, "open")
	} else {
		q.Del(MenuParam)
	}
	out.RawQuery = q.Encode()

	return out.RequestURI()
}

// ToggleURL is the target of the mobile menu button.
func ToggleURL(u *url.URL, current MenuState) string {
	return WithMenu(u, current.Toggle())
}

// closeMenu strips the menu flag from an in-site link.
func closeMenu(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	return WithMenu(u, MenuClosed)
}
