package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/ports"
	"github.com/aretw0/mael/pkg/schema"
	"github.com/aretw0/mael/pkg/variables"
)

const (
	// Extension of the saved workbook.
	Extension = ".xlsx"

	summaryLabel = "Summary"
	// summaryStartRow leaves one blank row under the label.
	summaryStartRow = 3
)

// Composer renders every document as one sheet of a single workbook.
type Composer struct {
	file   *excelize.File
	styles *styles
	used   map[string]bool
	sheets []string
}

var _ ports.Composer = (*Composer)(nil)

// New creates an empty workbook composer.
func New() *Composer {
	f := excelize.NewFile()
	return &Composer{
		file:   f,
		styles: newStyles(f),
		used:   make(map[string]bool),
	}
}

// Factory builds a fresh composer; it satisfies ports.ComposerFactory.
func Factory() ports.Composer {
	return New()
}

// Sheets returns the names of the sheets added so far, in order.
func (c *Composer) Sheets() []string {
	out := make([]string, len(c.sheets))
	copy(out, c.sheets)
	return out
}

// AddSheet writes the summary block, the header row and one row per step.
func (c *Composer) AddSheet(ctx context.Context, sheet *domain.Sheet, opts ports.SheetOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := opts.Columns
	if cfg == nil {
		cfg = schema.New()
	}

	name, err := c.newSheet(sheet.Title())
	if err != nil {
		return err
	}

	titleStyle, err := c.styles.summaryTitle()
	if err != nil {
		return err
	}
	if err := c.file.SetCellValue(name, "A1", summaryLabel); err != nil {
		return err
	}
	if err := c.file.SetCellStyle(name, "A1", "A1", titleStyle); err != nil {
		return err
	}

	row := summaryStartRow
	if sheet.Document != nil {
		for _, line := range sheet.Document.SummaryLines {
			if err := c.setCell(name, 1, row, variables.ApplyString(line, opts.Variables)); err != nil {
				return err
			}
			row++
		}
	}
	row++

	if err := c.writeHeader(name, row, sheet.Columns, cfg); err != nil {
		return err
	}
	row++

	for _, step := range sheet.Steps {
		if err := c.writeStep(name, row, sheet.Columns, step, cfg, opts.Variables); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (c *Composer) newSheet(title string) (string, error) {
	name := SheetName(title, c.used)
	c.used[strings.ToLower(name)] = true

	// The first sheet takes over the workbook's default one.
	if len(c.sheets) == 0 {
		if err := c.file.SetSheetName(c.file.GetSheetName(0), name); err != nil {
			return "", fmt.Errorf("failed to rename default sheet: %w", err)
		}
	} else if _, err := c.file.NewSheet(name); err != nil {
		return "", fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	c.sheets = append(c.sheets, name)
	return name, nil
}

func (c *Composer) writeHeader(sheet string, row int, columns []string, cfg *schema.ColumnConfig) error {
	for i, column := range columns {
		cond := cfg.Condition(column)
		if cond.Width > 0 {
			letter, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := c.file.SetColWidth(sheet, letter, letter, float64(cond.Width)); err != nil {
				return fmt.Errorf("failed to set width of %q: %w", column, err)
			}
		}

		style, err := c.styles.header(cond.Alignment)
		if err != nil {
			return err
		}
		if err := c.setStyledCell(sheet, i+1, row, column, style); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composer) writeStep(sheet string, row int, columns []string, step *domain.Step, cfg *schema.ColumnConfig, vars variables.Map) error {
	for i, column := range columns {
		style, err := c.styles.cell(cfg.Condition(column).Alignment)
		if err != nil {
			return err
		}
		var value any
		if v, ok := step.Get(column); ok {
			value = cellValue(variables.Apply(v, vars))
		}
		if err := c.setStyledCell(sheet, i+1, row, value, style); err != nil {
			return err
		}
	}
	return nil
}

// cellValue keeps numbers numeric and flattens everything else to text.
func cellValue(v any) any {
	switch val := v.(type) {
	case int, string:
		return val
	default:
		return domain.FormatValue(val)
	}
}

func (c *Composer) setCell(sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return c.file.SetCellValue(sheet, cell, value)
}

func (c *Composer) setStyledCell(sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if value != nil {
		if err := c.file.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return c.file.SetCellStyle(sheet, cell, cell, style)
}

// Compose saves the workbook as <dir>/<base>[_<env>].xlsx.
func (c *Composer) Compose(ctx context.Context, target ports.Target) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	defer c.file.Close()

	if len(c.sheets) > 0 {
		c.file.SetActiveSheet(0)
	}
	if err := os.MkdirAll(target.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(target.Dir, target.Name()+Extension)
	if err := c.file.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return path, nil
}
