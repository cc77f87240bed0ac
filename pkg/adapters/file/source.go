// Package file reads project documents from a local directory.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/mael/pkg/domain"
)

const documentPattern = "*" + domain.SourceExt

// Source implements ports.DocumentSource over the top level of a directory.
type Source struct {
	Dir    string
	ignore []string
}

// NewSource creates a source for dir. Ignore entries are basenames or glob
// patterns matched against basenames.
func NewSource(dir string, ignore []string) *Source {
	return &Source{Dir: dir, ignore: ignore}
}

// List returns the markdown documents of the directory in lexical order,
// minus ignored ones.
func (s *Source) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.Dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, s.Dir)
	}

	matches, err := doublestar.Glob(os.DirFS(s.Dir), documentPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.Ignored(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Ignored reports whether a document name matches an ignore entry.
func (s *Source) Ignored(name string) bool {
	base := filepath.Base(name)
	for _, pattern := range s.ignore {
		if pattern == base {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// Open opens a listed document.
func (s *Source) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name))
}

// LoadIgnore reads an ignore file: one entry per line, blank lines and
// "#" comments dropped. A missing file yields no entries.
func LoadIgnore(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}
	return entries, nil
}
