package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the mael command logger on Stderr, keeping Stdout for
// system messages and REPL output.
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a text logger on w.
// The "error" key is renamed to "err" so library and CLI records line up.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameError,
	}))
}

func renameError(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
