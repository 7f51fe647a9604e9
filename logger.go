package paintbook

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(slog.New(slog.DiscardHandler)) }

// SetLogger routes diagnostics from paintbook and the tour runner to l.
// Nothing is logged until it is called; nil silences logging again. It is
// safe to call while other goroutines draw.
//
// Debug records cover surface allocation, font fallback and PNG sizes.
// Info records are emitted once per demo image written.
//
//	paintbook.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
