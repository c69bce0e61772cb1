package layout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/metrics"
)

// DefaultAuthCheckTimeout bounds the session check of one render.
const DefaultAuthCheckTimeout = 2 * time.Second

const tracerName = "github.com/gospors/gospors/internal/layout"

// AuthClient is the part of the auth collaborator the shell needs.
type AuthClient interface {
	IsAuthenticated(r *http.Request) (bool, error)
	Me(r *http.Request) (*domain.User, error)
}

// Loader resolves the Viewer of a request.
type Loader struct {
	client  AuthClient
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTracerProvider traces checks on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) LoaderOption {
	return func(l *Loader) {
		l.tracer = tp.Tracer(tracerName)
	}
}

// NewLoader returns a Loader. A non-positive timeout uses DefaultAuthCheckTimeout;
// m may be nil.
func NewLoader(client AuthClient, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger, opts ...LoaderOption) *Loader {
	if timeout <= 0 {
		timeout = DefaultAuthCheckTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		client:  client,
		timeout: timeout,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type loadResult struct {
	profile *domain.User
	err     error
}

// Load asks the auth client who is looking at the page. Every auth failure,
// including the timeout, yields Anonymous with a nil error. The only error
// returned is the request's own context error: the caller must then not render.
func (l *Loader) Load(r *http.Request) (Viewer, error) {
	ctx, span := l.tracer.Start(r.Context(), "layout.LoadViewer")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req := r.WithContext(ctx)
	done := make(chan loadResult, 1)
	go func() {
		done <- l.check(req)
	}()

	var res loadResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = loadResult{err: ctx.Err()}
	}

	if err := r.Context().Err(); err != nil {
		span.SetStatus(codes.Error, "request cancelled")
		return nil, err
	}

	switch {
	case res.err != nil:
		l.logger.Warn("auth check failed, rendering anonymous",
			"error", res.err,
			"path", r.URL.Path,
		)
		l.metrics.AuthCheck(metrics.AuthError)
		span.RecordError(res.err)
		span.SetStatus(codes.Error, "auth check failed")
		span.SetAttributes(attribute.String("gospors.viewer", metrics.AuthError))
		return Anonymous{}, nil

	case res.profile == nil:
		l.metrics.AuthCheck(metrics.AuthAnonymous)
		span.SetAttributes(attribute.String("gospors.viewer", metrics.AuthAnonymous))
		return Anonymous{}, nil

	default:
		l.metrics.AuthCheck(metrics.AuthAuthenticated)
		span.SetAttributes(attribute.String("gospors.viewer", metrics.AuthAuthenticated))
		return Authenticated{Profile: res.profile}, nil
	}
}

func (l *Loader) check(r *http.Request) loadResult {
	ok, err := l.client.IsAuthenticated(r)
	if err != nil {
		return loadResult{err: err}
	}
	if !ok {
		return loadResult{}
	}

	user, err := l.client.Me(r)
	if err != nil {
		return loadResult{err: err}
	}
	if user == nil {
		return loadResult{err: errors.New("auth client returned no profile")}
	}
	return loadResult{profile: user}
}
