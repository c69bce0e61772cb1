package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/gospors/gospors/internal/auth"
	"github.com/gospors/gospors/internal/database"
	"github.com/gospors/gospors/internal/layout"
	"github.com/gospors/gospors/internal/middleware"
	"github.com/gospors/gospors/internal/route"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	auth   auth.Client
	users  database.Users
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new Handlers instance with all dependencies.
func New(client auth.Client, users database.Users, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		auth:   client,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// render writes content inside the layout shell. Nothing is written once the
// request has gone away.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, title string, active route.Page, content g.Node) {
	if r.Context().Err() != nil {
		return
	}

	props := layout.Props{
		Title:      title,
		Active:     active,
		Viewer:     middleware.GetViewer(r.Context()),
		Menu:       layout.MenuFromRequest(r),
		CurrentURL: r.URL,
		Year:       h.now().Year(),
		Content:    content,
	}

	templ.Handler(layout.Component(props), templ.WithStatus(status)).ServeHTTP(w, r)
}
