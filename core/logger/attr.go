// Package logger provides structured logging helpers built on Go's standard
// slog package. Attribute constructors return an empty Attr for nil or zero
// input, so call sites never need explicit nil checks:
//
//	log.Error("refresh failed", logger.Error(err), logger.Component("middleware"))
package logger

import (
	"log/slog"
	"time"
)

// Error returns an attribute for a single error under the key "error".
// Returns an empty Attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component tags a log record with the emitting component name.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Path tags a log record with the request path.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Duration records an elapsed duration in milliseconds under "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
