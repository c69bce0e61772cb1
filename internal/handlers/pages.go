package handlers

import (
	"net/http"
	"net/url"

	"github.com/gospors/gospors/internal/layout"
	"github.com/gospors/gospors/internal/middleware"
	"github.com/gospors/gospors/internal/pages"
	"github.com/gospors/gospors/internal/route"
)

const discoverLimit = 24

// Home handles the root path.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	loginFailed := r.URL.Query().Get("auth_error") != ""
	h.render(w, r, http.StatusOK, "Home", route.Home, pages.Home(loginFailed))
}

// Discover lists recently joined athletes. A directory failure renders the
// empty listing rather than an error page.
func (h *Handlers) Discover(w http.ResponseWriter, r *http.Request) {
	athletes, err := h.users.ListRecent(r.Context(), discoverLimit)
	if err != nil {
		h.logger.Error("failed to list athletes", "error", err)
		athletes = nil
	}
	h.render(w, r, http.StatusOK, "Discover", route.Discover, pages.Discover(athletes))
}

// AthleteDashboard is mounted behind middleware.RequireAuth.
func (h *Handlers) AthleteDashboard(w http.ResponseWriter, r *http.Request) {
	profile := layout.Profile(middleware.GetViewer(r.Context()))
	if profile == nil {
		h.auth.RedirectToLogin(w, r, route.CreatePageURL(route.AthleteDashboard))
		return
	}
	h.render(w, r, http.StatusOK, "My Dashboard", route.AthleteDashboard, pages.AthleteDashboard(profile))
}

// AthleteSignup invites visitors to join.
func (h *Handlers) AthleteSignup(w http.ResponseWriter, r *http.Request) {
	signedIn := layout.IsAuthenticated(middleware.GetViewer(r.Context()))
	loginURL := route.LoginPath + "?" + url.Values{
		route.ReturnToParam: {route.CreatePageURL(route.AthleteDashboard)},
	}.Encode()

	h.render(w, r, http.StatusOK, "Join as Athlete", route.AthleteSignup, pages.AthleteSignup(signedIn, loginURL))
}

// NotFound renders the 404 page inside the shell.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "Not Found", "", pages.NotFound())
}
