package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures New.
type Option func(*options)

type options struct {
	output     io.Writer
	level      slog.Level
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// WithLevel sets the minimum level written to the output.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput redirects log output away from stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithExtractors registers context extractors applied to every record.
// Nil extractors are dropped.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithSentry mirrors warnings and errors to Sentry in addition to the
// primary output. An empty DSN disables the mirror, which keeps local
// development configuration-free.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) {
		o.sentry = &cfg
	}
}

// New creates a JSON-formatted logger.
func New(opts ...Option) *slog.Logger {
	o := &options{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	var handler slog.Handler = slog.NewJSONHandler(o.output, &slog.HandlerOptions{
		Level: o.level,
	})

	if o.sentry != nil {
		if mirror, ok := newSentryHandler(*o.sentry); ok {
			handler = &teeHandler{primary: handler, mirror: mirror}
		}
	}

	return slog.New(newContextHandler(handler, o.extractors))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// teeHandler duplicates records to a mirror handler. Each side filters by
// its own level, so the mirror seeing only warnings does not stop the
// primary from logging debug output. A mirror write error never suppresses
// the primary write; errors from both sides are joined.
type teeHandler struct {
	primary slog.Handler
	mirror  slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.primary.Enabled(ctx, level) || h.mirror.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var primaryErr, mirrorErr error
	if h.primary.Enabled(ctx, rec.Level) {
		primaryErr = h.primary.Handle(ctx, rec)
	}
	if h.mirror.Enabled(ctx, rec.Level) {
		mirrorErr = h.mirror.Handle(ctx, rec.Clone())
	}
	return errors.Join(primaryErr, mirrorErr)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{
		primary: h.primary.WithAttrs(attrs),
		mirror:  h.mirror.WithAttrs(attrs),
	}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{
		primary: h.primary.WithGroup(name),
		mirror:  h.mirror.WithGroup(name),
	}
}

// contextHandler wraps a slog.Handler and injects context-extracted
// attributes during logging. Extraction happens per log call to capture
// fresh request-scoped values such as request IDs.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: extractors}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
	}
}
