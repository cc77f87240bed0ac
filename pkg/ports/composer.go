package ports

import (
	"context"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/schema"
	"github.com/aretw0/mael/pkg/variables"
)

// SheetOptions carries what a composer needs to render one sheet.
type SheetOptions struct {
	// Columns supplies width and alignment per column.
	Columns *schema.ColumnConfig
	// Variables are applied to every cell and summary line at render time.
	Variables variables.Map
}

// Target locates the output of a conversion run.
type Target struct {
	// Dir is the output directory.
	Dir string
	// Basename is the source directory's base name.
	Basename string
	// Environment is the optional variable environment suffix.
	Environment string
}

// Name returns the output stem: "<base>" or "<base>_<env>".
func (t Target) Name() string {
	if t.Environment == "" {
		return t.Basename
	}
	return t.Basename + "_" + t.Environment
}

// Composer renders shaped sheets into one output format.
// Sheets are added in document order; Compose writes the result and returns
// the path of what it saved.
type Composer interface {
	// AddSheet renders one document. Steps must already be shaped and carry
	// their increment values.
	AddSheet(ctx context.Context, sheet *domain.Sheet, opts SheetOptions) error

	// Compose persists everything added so far.
	Compose(ctx context.Context, target Target) (string, error)
}

// ComposerFactory builds a fresh composer for one run.
type ComposerFactory func() Composer
