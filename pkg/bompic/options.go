package bompic

import "log/slog"

// Options configures batch extraction behavior.
type Options struct {
	// Logger receives per-file skip warnings. Nil means slog.Default().
	Logger *slog.Logger
	// Workers bounds concurrent workbook scans. Values below 2 scan
	// sequentially. Manifest order does not depend on this.
	Workers int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// logger returns the configured logger or the process default.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// workers returns the effective scan concurrency.
func (o Options) workers() int {
	if o.Workers < 2 {
		return 1
	}
	return o.Workers
}
