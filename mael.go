package mael

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/mael/internal/compiler"
	"github.com/aretw0/mael/internal/runtime"
	"github.com/aretw0/mael/pkg/adapters/file"
	"github.com/aretw0/mael/pkg/adapters/memory"
	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/observability"
	"github.com/aretw0/mael/pkg/ports"
	"github.com/aretw0/mael/pkg/schema"
	"github.com/aretw0/mael/pkg/variables"
)

//go:embed VERSION
var version string

// Version returns the released version of the module.
func Version() string {
	return strings.TrimSpace(version)
}

// DefaultFormat is the output format used when none is selected.
const DefaultFormat = "excel"

// Converter is the high-level entry point of the library.
// It reads a project directory, shapes every document and hands the result to
// a composer.
type Converter struct {
	// Name is the project directory's base name; it names the output.
	Name string

	dir         string
	environment string
	format      string
	strict      bool
	source      ports.DocumentSource
	composer    ports.ComposerFactory
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithEnvironment selects the variable environment (config/variables_<env>.ini)
// and suffixes the output name with it.
func WithEnvironment(env string) Option {
	return func(c *Converter) {
		c.environment = env
	}
}

// WithFormat selects a registered output format (excel, xlsx, csv, tsv).
func WithFormat(format string) Option {
	return func(c *Converter) {
		c.format = format
	}
}

// WithStrict makes a missing title or summary abort the run instead of
// falling back or skipping the document.
func WithStrict(strict bool) Option {
	return func(c *Converter) {
		c.strict = strict
	}
}

// WithSource replaces the directory listing with a custom document source.
func WithSource(source ports.DocumentSource) Option {
	return func(c *Converter) {
		c.source = source
	}
}

// WithComposer bypasses the format registry.
func WithComposer(factory ports.ComposerFactory) Option {
	return func(c *Converter) {
		c.composer = factory
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Converter) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithMetrics records conversion activity into m.
func WithMetrics(m *observability.Metrics) Option {
	return WithLifecycleHooks(m.Hooks())
}

// New creates a converter for the project at dir.
// The output format is resolved here so an unknown selector fails before any
// document is read.
func New(dir string, opts ...Option) (*Converter, error) {
	c := &Converter{format: DefaultFormat}
	for _, opt := range opts {
		opt(c)
	}

	if dir == "" && c.source == nil {
		return nil, fmt.Errorf("dir is required when no custom source is provided")
	}
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, dir)
		}
		c.dir = abs
		c.Name = filepath.Base(abs)
	}

	if c.composer == nil {
		factory, err := Formats().Lookup(c.format)
		if err != nil {
			return nil, err
		}
		c.composer = factory
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if c.Name != "" {
		c.logger = c.logger.With("project", c.Name)
	}
	return c, nil
}

// Dir returns the absolute project directory ("" for source-only converters).
func (c *Converter) Dir() string {
	return c.dir
}

// OutputDir is where composers write.
func (c *Converter) OutputDir() string {
	return filepath.Join(c.dir, domain.OutputDir)
}

// Project is the configuration of one run.
type Project struct {
	Columns     *schema.ColumnConfig
	ColumnsFile string
	Variables   variables.Map
	Ignore      []string
}

// Load reads the column schema, variables and ignore list from the project's
// config directory. Missing files fall back to defaults.
func (c *Converter) Load() (*Project, error) {
	configDir := filepath.Join(c.dir, domain.ConfigDir)
	p := &Project{Columns: schema.New()}

	if c.dir != "" {
		for _, name := range domain.ColumnFiles {
			path := filepath.Join(configDir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := schema.Parse(path)
			if err != nil {
				return nil, err
			}
			p.Columns, p.ColumnsFile = cfg, path
			break
		}

		vars, err := variables.Load(variables.Files(configDir, domain.VariablesFile, c.environment)...)
		if err != nil {
			return nil, err
		}
		p.Variables = vars

		ignore, err := file.LoadIgnore(filepath.Join(configDir, domain.IgnoreFile))
		if err != nil {
			return nil, err
		}
		p.Ignore = ignore
	}
	if p.Variables == nil {
		p.Variables = variables.Map{}
	}

	c.logger.Debug("Project Loaded",
		"columns", p.ColumnsFile,
		"variables", len(p.Variables),
		"ignored", len(p.Ignore),
		"environment", c.environment)
	return p, nil
}

// Schema returns the project's column schema as Load resolves it.
func (c *Converter) Schema() (*schema.ColumnConfig, error) {
	p, err := c.Load()
	if err != nil {
		return nil, err
	}
	return p.Columns, nil
}

func (c *Converter) documentSource(p *Project) ports.DocumentSource {
	if c.source != nil {
		return c.source
	}
	return file.NewSource(c.dir, p.Ignore)
}

// Sheets parses and shapes every document of the project, in source order.
// Returned steps carry their increment values and are ready to compose.
// Documents without a summary are skipped unless the converter is strict.
func (c *Converter) Sheets(ctx context.Context, p *Project) ([]*domain.Sheet, error) {
	source := c.documentSource(p)
	names, err := source.List(ctx)
	if err != nil {
		return nil, err
	}

	parser := compiler.NewParser(p.Columns, compiler.WithStrict(c.strict))
	shaper := runtime.NewShaper(p.Columns)

	var sheets []*domain.Sheet
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := c.parse(parser, source, name)
		if err != nil {
			if errors.Is(err, domain.ErrMissingSummary) && !c.strict {
				c.logger.Warn("Document Skipped", "file", name, "err", err)
				c.emitSkipped(ctx, name, err)
				continue
			}
			return nil, &domain.DocumentError{Path: name, Err: err}
		}

		columns, steps := shaper.Shape(doc.Steps)
		shaper.AssignIncrements(steps)

		c.logger.Debug("Document Parsed", "file", name, "title", doc.Title, "steps", len(steps))
		if c.hooks.OnDocumentParsed != nil {
			c.hooks.OnDocumentParsed(ctx, &domain.DocumentEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDocumentParsed},
				Source:    name,
				Title:     doc.Title,
				Steps:     len(steps),
			})
		}
		sheets = append(sheets, &domain.Sheet{Document: doc, Columns: columns, Steps: steps})
	}
	return sheets, nil
}

func (c *Converter) parse(parser *compiler.Parser, source ports.DocumentSource, name string) (*domain.Document, error) {
	rc, err := source.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parser.Parse(name, rc)
}

func (c *Converter) emitSkipped(ctx context.Context, name string, err error) {
	if c.hooks.OnDocumentSkipped == nil {
		return
	}
	c.hooks.OnDocumentSkipped(ctx, &domain.DocumentEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventDocumentSkipped},
		Source:    name,
		Err:       err,
	})
}

// Compose hands shaped sheets to a fresh composer and saves the output.
func (c *Converter) Compose(ctx context.Context, p *Project, sheets []*domain.Sheet, composer ports.Composer) (string, error) {
	for _, sheet := range sheets {
		opts := ports.SheetOptions{
			Columns:   p.Columns,
			Variables: p.Variables.Merge(sheet.Document.Variables),
		}
		if err := composer.AddSheet(ctx, sheet, opts); err != nil {
			return "", &domain.DocumentError{Path: sheet.Document.Source, Err: err}
		}
	}

	return composer.Compose(ctx, ports.Target{
		Dir:         c.OutputDir(),
		Basename:    c.outputName(),
		Environment: c.environment,
	})
}

func (c *Converter) outputName() string {
	if c.Name == "" {
		return "mael"
	}
	return c.Name
}

// Convert runs the whole pipeline with the configured format and returns the
// path of the saved output.
func (c *Converter) Convert(ctx context.Context) (string, error) {
	start := time.Now()

	p, err := c.Load()
	if err != nil {
		return "", err
	}
	sheets, err := c.Sheets(ctx, p)
	if err != nil {
		return "", err
	}

	path, err := c.Compose(ctx, p, sheets, c.composer())
	if err != nil {
		return "", err
	}

	c.logger.Info("Output Saved", "path", path, "sheets", len(sheets))
	if c.hooks.OnOutputSaved != nil {
		c.hooks.OnOutputSaved(ctx, &domain.OutputEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventOutputSaved},
			Path:      path,
			Sheets:    len(sheets),
			Duration:  time.Since(start),
		})
	}
	return path, nil
}

// Render runs the pipeline into memory and returns plain text grids with
// variables applied. Nothing is written to disk.
func (c *Converter) Render(ctx context.Context) ([]memory.RenderedSheet, error) {
	p, err := c.Load()
	if err != nil {
		return nil, err
	}
	sheets, err := c.Sheets(ctx, p)
	if err != nil {
		return nil, err
	}

	composer := memory.NewComposer()
	if _, err := c.Compose(ctx, p, sheets, composer); err != nil {
		return nil, err
	}
	return composer.Sheets(), nil
}
