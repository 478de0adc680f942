package games

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Its Enabled reports false, so disabled
// calls never build their attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// current is read by the Loop goroutine while SetLogger may run on
// another.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the package's diagnostics to l. Nothing is logged
// until it is called; nil switches logging off again. It may be called
// at any time, including while a Loop is running.
//
// Messages by level:
//   - Debug: "canvas created", "frame reduced" (with its duration)
//   - Info: "loop started", "loop stopped", files written
//   - Warn: a frame that took longer than its interval
//
// To see everything on stderr:
//
//	games.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger { return current.Load() }
