package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// DemoDocument is the minimal two-step document used across tests.
const DemoDocument = `# Demo

## Summary

The demo summary.

## Steps

###Step
* first
* second

---

###Step
* only
`

// DemoColumns declares Step as a list column.
const DemoColumns = `column_conditions:
  Step:
    type: list
`

// SetupProject creates a temporary project directory and writes files into it.
// Keys are slash-separated paths relative to the project root.
// It returns the absolute path to the project and fails the test immediately on error.
func SetupProject(t *testing.T, name string, files map[string]string) string {
	t.Helper()

	root, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755), "Failed to create project dir")

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", rel)
	}
	return dir
}

// SetupDemoProject creates the standard demo project: one document and a
// schema declaring Step as a list.
func SetupDemoProject(t *testing.T) string {
	t.Helper()
	return SetupProject(t, "demo", map[string]string{
		"demo.md":            DemoDocument,
		"config/columns.yml": DemoColumns,
	})
}
