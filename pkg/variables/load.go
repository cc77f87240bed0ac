package variables

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Files returns the variable files for an environment, base file first.
// An empty environment yields only the base file.
func Files(configDir, baseName, environment string) []string {
	files := []string{filepath.Join(configDir, baseName)}
	if environment != "" {
		ext := filepath.Ext(baseName)
		stem := strings.TrimSuffix(baseName, ext)
		files = append(files, filepath.Join(configDir, stem+"_"+environment+ext))
	}
	return files
}

// loadOptions read variables files as plain key=value lines: values are kept
// as written (no quote stripping, inline comments or continuations) and lines
// without "=" are skipped.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	IgnoreContinuation:      true,
	SkipUnrecognizableLines: true,
}

// Load reads and merges variable files. Later files override earlier ones on
// key collision; missing files are skipped.
func Load(paths ...string) (Map, error) {
	vars := make(Map)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to open variables file: %w", err)
		}

		f, err := ini.LoadSources(loadOptions, path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse variables file %s: %w", path, err)
		}
		for _, section := range f.Sections() {
			for _, key := range section.Keys() {
				vars[strings.TrimSpace(key.Name())] = strings.TrimSpace(key.Value())
			}
		}
	}
	return vars, nil
}
