package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mux mounts endpoint handlers alongside operational routes.
type Mux struct {
	router chi.Router
}

// MuxOption configures a Mux.
type MuxOption func(*muxConfig)

type muxConfig struct {
	middlewares     []Middleware
	readinessChecks healthChecks
}

// UseMiddleware registers middleware applied to every mounted handler,
// health endpoints included.
func UseMiddleware(mw ...Middleware) MuxOption {
	return func(c *muxConfig) {
		c.middlewares = append(c.middlewares, mw...)
	}
}

// WithReadinessCheck registers a named check run by the readiness endpoint.
func WithReadinessCheck(name string, check CheckFunc) MuxOption {
	return func(c *muxConfig) {
		c.readinessChecks[name] = check
	}
}

// NewMux creates a Mux with liveness and readiness endpoints mounted at
// /health/live and /health/ready.
func NewMux(opts ...MuxOption) *Mux {
	cfg := &muxConfig{
		readinessChecks: make(healthChecks),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", livenessHandler())
	r.Get("/health/ready", readinessHandler(cfg.readinessChecks))

	return &Mux{router: r}
}

// Handle mounts a handler under the given chi pattern. Endpoint handlers do
// their own path matching, so a catch-all pattern like "/*" is the common
// mount point.
func (m *Mux) Handle(pattern string, h http.Handler) {
	m.router.Handle(pattern, h)
}

// Method mounts a handler for a single HTTP method.
func (m *Mux) Method(method, pattern string, h http.Handler) {
	m.router.Method(method, pattern, h)
}

// ServeHTTP implements http.Handler.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}
