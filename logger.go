package bitpaint

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record and reports all levels as disabled, so
// disabled log calls never format their arguments.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes the diagnostics of bitpaint and its sub-packages to l.
// A nil l silences them again, which is also the initial state.
//
// Levels:
//   - [slog.LevelDebug]: out-of-viewport vectors, canvas size corrections, ring plans
//   - [slog.LevelInfo]: bitmaps and config files written
//   - [slog.LevelWarn]: config files rewritten with missing defaults
//
// SetLogger may be called while other goroutines are logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
