package handlers

import (
	"net/http"
	"net/url"

	"github.com/gospors/gospors/internal/route"
)

// Login starts the login flow. The visitor comes back to return_to, or to the
// same-site page that linked here.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	returnTo := r.URL.Query().Get(route.ReturnToParam)
	if returnTo == "" {
		returnTo = sameSiteReferer(r)
	}
	h.auth.RedirectToLogin(w, r, returnTo)
}

// AuthCallback completes the login flow.
func (h *Handlers) AuthCallback(w http.ResponseWriter, r *http.Request) {
	h.auth.HandleCallback(w, r)
}

// Logout clears the session and redirects to home.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(w, r, route.CreatePageURL(route.Home))
}

func sameSiteReferer(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host {
		return "/"
	}
	return u.RequestURI()
}
