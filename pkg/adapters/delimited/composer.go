// Package delimited renders documents as comma- or tab-separated files, one
// file per document.
package delimited

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/ports"
	"github.com/aretw0/mael/pkg/variables"
)

// Format describes one delimited flavour.
type Format struct {
	Comma     rune
	Extension string
}

var (
	CSV = Format{Comma: ',', Extension: "csv"}
	TSV = Format{Comma: '\t', Extension: "tsv"}
)

var pathSeparators = strings.NewReplacer("/", "_", `\`, "_")

type table struct {
	title string
	rows  [][]string
}

// Composer buffers rendered tables and writes them on Compose.
type Composer struct {
	format Format
	tables []table
}

var _ ports.Composer = (*Composer)(nil)

// New creates a composer for the given format.
func New(format Format) *Composer {
	return &Composer{format: format}
}

// NewCSV satisfies ports.ComposerFactory.
func NewCSV() ports.Composer { return New(CSV) }

// NewTSV satisfies ports.ComposerFactory.
func NewTSV() ports.Composer { return New(TSV) }

// AddSheet renders a header row plus one row per step. The summary is not
// part of delimited output.
func (c *Composer) AddSheet(ctx context.Context, sheet *domain.Sheet, opts ports.SheetOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(sheet.Steps)+1)
	rows = append(rows, append([]string(nil), sheet.Columns...))
	for _, step := range sheet.Steps {
		row := make([]string, len(sheet.Columns))
		for i, column := range sheet.Columns {
			if v, ok := step.Get(column); ok {
				row[i] = domain.FormatValue(variables.Apply(v, opts.Variables))
			}
		}
		rows = append(rows, row)
	}
	c.tables = append(c.tables, table{title: sheet.Title(), rows: rows})
	return nil
}

// Dir returns the directory a run writes into: <dir>/<base>[_<env>]_<ext>.
func (c *Composer) Dir(target ports.Target) string {
	return filepath.Join(target.Dir, target.Name()+"_"+c.format.Extension)
}

// Compose recreates the output directory and writes <title>.<ext> per document.
func (c *Composer) Compose(ctx context.Context, target ports.Target) (string, error) {
	dir := c.Dir(target)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("failed to clear %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	used := make(map[string]bool)
	for _, t := range c.tables {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := FileName(t.title, used)
		if err := c.write(filepath.Join(dir, name+"."+c.format.Extension), t.rows); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// FileName turns a title into a file stem inside the output directory.
// Path separators become "_"; a stem already in used (compared
// case-insensitively) gets a " (n)" suffix. The result is recorded in used.
func FileName(title string, used map[string]bool) string {
	base := pathSeparators.Replace(title)
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s (%d)", base, n)
	}
	used[strings.ToLower(name)] = true
	return name
}

func (c *Composer) write(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = c.format.Comma
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
