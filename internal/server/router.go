// Package server assembles the HTTP router and runs it.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gospors/gospors/internal/auth"
	"github.com/gospors/gospors/internal/handlers"
	"github.com/gospors/gospors/internal/metrics"
	"github.com/gospors/gospors/internal/middleware"
	"github.com/gospors/gospors/internal/route"
)

// Deps are the collaborators of the router.
type Deps struct {
	Handlers *handlers.Handlers
	Auth     auth.Client
	Viewers  middleware.ViewerLoader
	Metrics  *metrics.Metrics // nil disables /metrics
	Logger   *slog.Logger
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) http.Handler {
	h := d.Handlers

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/health", h.Health)

	// Auth endpoints
	r.Get(route.LoginPath, h.Login)
	r.Get(route.CallbackPath, h.AuthCallback)
	r.Post(route.LogoutPath, h.Logout)

	// Pages rendered inside the layout shell
	r.Group(func(r chi.Router) {
		r.Use(middleware.Viewer(d.Viewers))

		r.Get(route.CreatePageURL(route.Home), h.Home)
		r.Get(route.CreatePageURL(route.Discover), h.Discover)
		r.Get(route.CreatePageURL(route.AthleteSignup), h.AthleteSignup)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(d.Auth))
			r.Get(route.CreatePageURL(route.AthleteDashboard), h.AthleteDashboard)
		})

		r.NotFound(h.NotFound)
	})

	return r
}
