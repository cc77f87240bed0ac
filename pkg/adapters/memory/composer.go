package memory

import (
	"context"
	"sync"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/ports"
	"github.com/aretw0/mael/pkg/variables"
)

// RenderedSheet is one document rendered to plain text cells.
type RenderedSheet struct {
	Title   string     `json:"title"`
	Source  string     `json:"source,omitempty"`
	Summary []string   `json:"summary"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Composer keeps rendered sheets in memory instead of writing files.
type Composer struct {
	mu     sync.Mutex
	sheets []RenderedSheet
}

var _ ports.Composer = (*Composer)(nil)

// NewComposer creates an empty in-memory composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Factory satisfies ports.ComposerFactory.
func Factory() ports.Composer {
	return NewComposer()
}

// AddSheet renders the summary and step rows with variables applied.
func (c *Composer) AddSheet(ctx context.Context, sheet *domain.Sheet, opts ports.SheetOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := RenderedSheet{
		Title:   sheet.Title(),
		Summary: []string{},
		Columns: append([]string{}, sheet.Columns...),
		Rows:    make([][]string, 0, len(sheet.Steps)),
	}
	if sheet.Document != nil {
		out.Source = sheet.Document.Source
		for _, line := range sheet.Document.SummaryLines {
			out.Summary = append(out.Summary, variables.ApplyString(line, opts.Variables))
		}
	}
	for _, step := range sheet.Steps {
		row := make([]string, len(sheet.Columns))
		for i, column := range sheet.Columns {
			if v, ok := step.Get(column); ok {
				row[i] = domain.FormatValue(variables.Apply(v, opts.Variables))
			}
		}
		out.Rows = append(out.Rows, row)
	}

	c.mu.Lock()
	c.sheets = append(c.sheets, out)
	c.mu.Unlock()
	return nil
}

// Compose returns a pseudo path naming the target; nothing is written.
func (c *Composer) Compose(ctx context.Context, target ports.Target) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "memory://" + target.Name(), nil
}

// Sheets returns the rendered sheets in the order they were added.
func (c *Composer) Sheets() []RenderedSheet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RenderedSheet, len(c.sheets))
	copy(out, c.sheets)
	return out
}
