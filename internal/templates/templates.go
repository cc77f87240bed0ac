// Package templates holds the project skeletons written by "mael init".
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

//go:embed all:normal all:test_case
var files embed.FS

// Template names, in the order they are offered.
const (
	Normal   = "normal"
	TestCase = "test_case"
)

// Names lists the available templates.
func Names() []string {
	return []string{Normal, TestCase}
}

// Copy writes the named template into dir, creating it if needed.
// Existing files with the same names are overwritten.
// It returns the written paths relative to dir.
func Copy(name, dir string) ([]string, error) {
	if !slices.Contains(Names(), name) {
		return nil, fmt.Errorf("unknown template %q (available: %v)", name, Names())
	}
	root, err := fs.Sub(files, name)
	if err != nil {
		return nil, err
	}

	var written []string
	err = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(root, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
