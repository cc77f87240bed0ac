package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/mael/internal/logging"
	"github.com/aretw0/mael/pkg/domain"
)

// errInterrupted is returned by InterruptibleReader once its cancel channel closes.
var errInterrupted = errors.New("interrupted")

// SignalContext is a context cancelled by SIGINT or SIGTERM that remembers
// which signal arrived.
type SignalContext struct {
	context.Context
	Cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext works like signal.NotifyContext but keeps the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout messages).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createDebugHooks logs every document event at debug level.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDocumentParsed: func(ctx context.Context, e *domain.DocumentEvent) {
			logger.Debug("Document Event", "type", e.Type, "file", e.Source, "steps", e.Steps)
		},
		OnDocumentSkipped: func(ctx context.Context, e *domain.DocumentEvent) {
			logger.Debug("Document Event", "type", e.Type, "file", e.Source, "err", e.Err)
		},
		OnOutputSaved: func(ctx context.Context, e *domain.OutputEvent) {
			logger.Debug("Output Event", "type", e.Type, "path", e.Path, "duration", e.Duration)
		},
	}
}

// InterruptibleReader wraps an io.Reader (like os.Stdin) and checks for a cancellation signal.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{
		base:   base,
		cancel: cancel,
	}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}

	// Read (This blocks!)
	n, err = r.base.Read(p)

	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}
	return n, err
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, errInterrupted) ||
		errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
