// Package log provides the small structured-logging wrapper used
// throughout the upgrade core.
//
// It wraps log/slog directly rather than introducing its own interface:
// components ask for a named logger once and every call re-resolves
// slog.Default() so tests can redirect output (e.g. to capture
// diagnostics for malformed protocols or dropped data channels)
// without threading a logger through every constructor.
package log

import (
	"context"
	"log/slog"
)

// ComponentLogger resolves slog.Default() on every call, tagged with a
// fixed "component" attribute.
type ComponentLogger struct {
	component string
}

// Logger returns a ComponentLogger for the given component name.
func Logger(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

func (l *ComponentLogger) with() *slog.Logger {
	return slog.Default().With("component", l.component)
}

func (l *ComponentLogger) Debug(msg string, args ...any) { l.with().Debug(msg, args...) }
func (l *ComponentLogger) Info(msg string, args ...any)  { l.with().Info(msg, args...) }
func (l *ComponentLogger) Warn(msg string, args ...any)  { l.with().Warn(msg, args...) }
func (l *ComponentLogger) Error(msg string, args ...any) { l.with().Error(msg, args...) }

func (l *ComponentLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.with().DebugContext(ctx, msg, args...)
}

// TruncateID safely truncates an identifier for log display, avoiding a
// slice-bounds panic when id is shorter than maxLen.
func TruncateID(id string, maxLen int) string {
	if len(id) <= maxLen {
		return id
	}
	return id[:maxLen]
}

// SetOutput redirects the default logger, e.g. in tests that assert on
// emitted diagnostics.
func SetOutput(h slog.Handler) {
	slog.SetDefault(slog.New(h))
}
