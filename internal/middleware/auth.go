package middleware

import (
	"net/http"

	"github.com/gospors/gospors/internal/layout"
)

// LoginRedirector starts the login flow.
type LoginRedirector interface {
	RedirectToLogin(w http.ResponseWriter, r *http.Request, returnURL string)
}

// RequireAuth sends anonymous viewers through login and back to the page
// they asked for. It relies on Viewer having run first.
func RequireAuth(login LoginRedirector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !layout.IsAuthenticated(GetViewer(r.Context())) {
				login.RedirectToLogin(w, r, layout.WithMenu(r.URL, layout.MenuClosed))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
