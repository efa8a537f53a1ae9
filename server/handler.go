package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/routekit"
	"github.com/dmitrymomot/routekit/pkg/logger"
)

// ErrorHandler renders an error produced by a matched endpoint's task.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures an endpoint handler.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	notFound     http.Handler
	errorHandler ErrorHandler
}

// WithLogger sets the logger used for request failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

// WithNotFound sets the handler invoked when the endpoint declines the
// request or leaves path segments unconsumed.
func WithNotFound(h http.Handler) Option {
	return func(c *config) {
		c.notFound = h
	}
}

// WithErrorHandler overrides how task failures are rendered.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}

// Handler adapts an endpoint into an http.Handler.
//
// Per request it builds the Input and ApplyContext, applies the endpoint, and
// requires the cursor to reach end-of-segments: leftover segments mean the
// route does not cover the path, which is a not-found outcome exactly like a
// decline. On a match the task is polled to completion under the request
// context and the output is rendered.
func Handler[T any](e routekit.Endpoint[T], render RenderFunc[T], opts ...Option) http.Handler {
	cfg := &config{
		logger:   logger.NewNope(),
		notFound: http.NotFoundHandler(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = defaultErrorHandler(cfg.logger)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		in, err := routekit.NewInput(r)
		if err != nil {
			cfg.errorHandler(w, r, err)
			return
		}

		ac := routekit.NewApplyContext(in)
		task, ok := e.Apply(ac)
		if !ok || !ac.AtEnd() {
			cfg.notFound.ServeHTTP(w, r)
			return
		}

		tc := routekit.NewTaskContext(r.Context(), in)
		v, err := pollToCompletion(tc, task)
		if err != nil {
			cfg.errorHandler(w, r, err)
			return
		}

		if err := render(w, v); err != nil {
			cfg.logger.ErrorContext(r.Context(), "response rendering failed",
				slog.String("path", r.URL.Path),
				slog.Any("error", err))
		}
	})
}

// pollToCompletion drives the cooperative poll loop for one request.
// Combinators never suspend on their own; only leaf tasks report not-ready
// while they await I/O, so rounds are cheap and the loop yields between them.
func pollToCompletion[T any](tc *routekit.TaskContext, task routekit.Task[T]) (T, error) {
	var zero T
	for {
		v, done, err := task.Poll(tc)
		if err != nil {
			return zero, err
		}
		if done {
			return v, nil
		}

		select {
		case <-tc.Context().Done():
			return zero, tc.Context().Err()
		default:
			runtime.Gosched()
		}
	}
}

func defaultErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := routekit.AsHTTPError(err)
		switch {
		case httpErr != nil:
			// fall through with the task's own status
		case errors.Is(err, context.DeadlineExceeded):
			httpErr = routekit.ErrServiceUnavailable("request timed out", routekit.WithError(err))
		default:
			httpErr = routekit.ErrInternal("internal server error", routekit.WithError(err))
		}

		if httpErr.Code >= http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", httpErr.Code),
				slog.Any("error", err))
		}

		writeJSONError(w, httpErr)
	}
}

func writeJSONError(w http.ResponseWriter, httpErr *routekit.HTTPError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": httpErr.Message})
}
