package cli

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = teeHandler{}

// teeHandler sends every record to each of its handlers that's enabled for the record's level.
type teeHandler []slog.Handler

func (h teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (h teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(teeHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h teeHandler) WithGroup(name string) slog.Handler {
	next := make(teeHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}

// debugLogger returns the logger used for resolution.
// Settings.Debug writes debug records to the printer, in addition to the configured Logger if there is one.
func (a *Application) debugLogger() *slog.Logger {
	if !a.Settings.Debug {
		return a.Logger
	}
	debug := slog.NewTextHandler(a.printer, &slog.HandlerOptions{Level: slog.LevelDebug})
	if a.Logger == nil {
		return slog.New(debug)
	}
	return slog.New(teeHandler{a.Logger.Handler(), debug})
}
