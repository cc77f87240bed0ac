package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDocumentParsed  EventType = "document_parsed"
	EventDocumentSkipped EventType = "document_skipped"
	EventOutputSaved     EventType = "output_saved"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DocumentEvent reports the outcome of reading one source.
type DocumentEvent struct {
	EventBase
	Source string `json:"source"`
	Title  string `json:"title,omitempty"`
	Steps  int    `json:"steps"`
	Err    error  `json:"-"`
}

// OutputEvent reports a saved conversion result.
type OutputEvent struct {
	EventBase
	Path     string        `json:"path"`
	Sheets   int           `json:"sheets"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for conversion observability.
type LifecycleHooks struct {
	OnDocumentParsed  func(context.Context, *DocumentEvent)
	OnDocumentSkipped func(context.Context, *DocumentEvent)
	OnOutputSaved     func(context.Context, *OutputEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnDocumentParsed:  chain(h.OnDocumentParsed, other.OnDocumentParsed),
		OnDocumentSkipped: chain(h.OnDocumentSkipped, other.OnDocumentSkipped),
		OnOutputSaved:     chain(h.OnOutputSaved, other.OnOutputSaved),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
