// Package logger provides structured logging with context extraction and
// optional Sentry mirroring.
//
// It builds on log/slog: New returns a JSON logger whose handler runs a set
// of ContextExtractor functions on every record, so request-scoped values
// (request IDs, user IDs) land in each log entry without callers threading
// them through manually.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//
// With WithSentry, warnings and errors are mirrored to Sentry in addition to
// the primary output; errors create Sentry events. An empty DSN disables the
// mirror, so the same code path works unconfigured in development.
//
//	log := logger.New(logger.WithSentry(logger.SentryConfig{
//	    DSN:         os.Getenv("SENTRY_DSN"),
//	    Environment: "production",
//	}))
//
// NewNope returns a logger that discards everything, useful as a default
// when logging is not configured.
package logger
