package ports

import (
	"context"
	"io"
)

// DocumentSource enumerates the markdown documents of a project.
type DocumentSource interface {
	// List returns document names in processing order.
	List(ctx context.Context) ([]string, error)

	// Open returns the content of a listed document.
	Open(name string) (io.ReadCloser, error)
}
