package memory

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Source implements ports.DocumentSource using an in-memory map.
type Source struct {
	docs map[string]string
}

// NewSource creates a source from name → markdown content.
func NewSource(docs map[string]string) *Source {
	copied := make(map[string]string, len(docs))
	for k, v := range docs {
		copied[k] = v
	}
	return &Source{docs: copied}
}

// List returns all document names in lexical order.
func (s *Source) List(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Open returns the content of a document.
func (s *Source) Open(name string) (io.ReadCloser, error) {
	content, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", name)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
