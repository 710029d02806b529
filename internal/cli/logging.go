package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the command logger. Debug records (one per producer) are
// only emitted with --verbose. JSON output gets JSON logs so both streams
// stay machine readable.
func newLogger(w io.Writer, opts *RootOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
