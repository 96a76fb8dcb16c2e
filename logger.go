package texter

import (
	"log/slog"

	"github.com/gogpu/texter/internal/logging"
)

// SetLogger configures the logger for texter and all its sub-packages.
// By default, texter produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by texter:
//   - [slog.LevelDebug]: skipped codes, wrap decisions, ignored keys
//   - [slog.LevelInfo]: atlas build summaries
//   - [slog.LevelWarn]: recovered problems, such as an unreadable document
//
// Example:
//
//	texter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by texter.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
