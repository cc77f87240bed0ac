package tests

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/mael/pkg/ports"
)

// DocumentSourceContractTest is a reusable test suite that verifies if an adapter complies with ports.DocumentSource.
// expected maps every document the source must list to its content; want is the listing order.
func DocumentSourceContractTest(t *testing.T, source ports.DocumentSource, expected map[string]string, want []string) {
	t.Helper()
	ctx := context.Background()

	// 1. Test List
	t.Run("List_Order", func(t *testing.T) {
		names, err := source.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing documents: %v", err)
		}
		if len(names) != len(want) {
			t.Fatalf("expected %d documents, got %d: %v", len(want), len(names), names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("document %d: got %q, want %q", i, names[i], want[i])
			}
		}
	})

	// 2. Test Open (Success)
	t.Run("Open_Success", func(t *testing.T) {
		for name, content := range expected {
			rc, err := source.Open(name)
			if err != nil {
				t.Fatalf("unexpected error opening %s: %v", name, err)
			}
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				t.Fatalf("unexpected error reading %s: %v", name, err)
			}
			if string(data) != content {
				t.Errorf("content mismatch for %s. got %q, want %q", name, data, content)
			}
		}
	})

	// 3. Test Open (NotFound)
	t.Run("Open_NotFound", func(t *testing.T) {
		if _, err := source.Open("non-existent-document.md"); err == nil {
			t.Error("expected error for non-existent document, got nil")
		}
	})
}
