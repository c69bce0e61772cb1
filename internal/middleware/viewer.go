package middleware

import (
	"context"
	"net/http"

	"github.com/gospors/gospors/internal/layout"
)

type contextKey string

// ViewerContextKey is the context key for the layout viewer.
const ViewerContextKey contextKey = "viewer"

// ViewerLoader resolves who is looking at a page.
type ViewerLoader interface {
	Load(r *http.Request) (layout.Viewer, error)
}

// Viewer returns a middleware that loads the viewer into the request context.
// A request cancelled while the check is in flight is dropped without a response.
func Viewer(loader ViewerLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := loader.Load(r)
			if err != nil {
				return
			}

			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), v)))
		})
	}
}

// WithViewer stores v in ctx.
func WithViewer(ctx context.Context, v layout.Viewer) context.Context {
	return context.WithValue(ctx, ViewerContextKey, v)
}

// GetViewer retrieves the viewer from context. Missing means Anonymous.
func GetViewer(ctx context.Context) layout.Viewer {
	v, ok := ctx.Value(ViewerContextKey).(layout.Viewer)
	if !ok || v == nil {
		return layout.Anonymous{}
	}
	return v
}
