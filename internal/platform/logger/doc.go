// Package logger configures the application's structured logging and
// provides helpers for carrying a request-scoped *slog.Logger through a
// context.Context.
package logger
