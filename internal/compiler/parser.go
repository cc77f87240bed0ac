package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/schema"
)

var (
	titleLine     = regexp.MustCompile(`^#\s*([^#\s].*?)\s*$`)
	summaryMarker = regexp.MustCompile(`^##\s*Summary\s*$`)
	stepsMarker   = regexp.MustCompile(`^##\s*(List|Steps|Rows)\s*$`)
	fieldMarker   = regexp.MustCompile(`^#{3,}\s*(\S.*?)\s*$`)
	stepSeparator = regexp.MustCompile(`^\s*---\s*$`)
	utf8ByteOrder = []byte("\xef\xbb\xbf")
	maxLineLength = 1024 * 1024
)

type parseState int

const (
	seekTitle parseState = iota
	seekSummary
	readSummary
	readSteps
)

// Parser turns one markdown source into a Document.
// It is lenient about structure: lines that match no marker are content (or
// ignored outside a field). Only a missing title (in strict mode) and a
// missing summary marker are reported as errors.
type Parser struct {
	columns *schema.ColumnConfig
	strict  bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes a missing "# Title" line an error instead of falling back
// to the front matter title or the file name.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a parser bound to a column schema. Field value types and
// the repeat policy come from the schema.
func NewParser(columns *schema.ColumnConfig, opts ...Option) *Parser {
	if columns == nil {
		columns = schema.New()
	}
	p := &Parser{columns: columns}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a source named name. The name is used for the fallback title.
func (p *Parser) Parse(name string, r io.Reader) (*domain.Document, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	source = bytes.TrimPrefix(source, utf8ByteOrder)

	meta, body := splitFrontMatter(source)

	doc := &domain.Document{
		Source:    name,
		Variables: meta.Variables,
	}

	var summary []string
	steps := newStepReader(p.columns)
	state := seekTitle

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		switch state {
		case seekTitle:
			if m := titleLine.FindStringSubmatch(line); m != nil {
				doc.Title = m[1]
				state = seekSummary
			} else if summaryMarker.MatchString(line) {
				state = readSummary
			}
		case seekSummary:
			if summaryMarker.MatchString(line) {
				state = readSummary
			}
		case readSummary:
			if stepsMarker.MatchString(line) {
				state = readSteps
				continue
			}
			summary = append(summary, line)
		case readSteps:
			steps.feed(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	if doc.Title == "" {
		doc.Title = strings.TrimSpace(meta.Title)
	}
	if doc.Title == "" {
		if p.strict {
			return nil, domain.ErrMissingTitle
		}
		doc.Title = baseTitle(name)
	}
	if state < readSummary {
		return nil, domain.ErrMissingSummary
	}

	doc.SummaryLines = TrimBlankLines(summary)
	doc.Steps = steps.finish()
	return doc, nil
}

func baseTitle(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// stepReader collects step records while the parser is in the steps section.
type stepReader struct {
	columns *schema.ColumnConfig
	steps   []*domain.Step
	current *domain.Step
	field   *StepItem
}

func newStepReader(columns *schema.ColumnConfig) *stepReader {
	return &stepReader{columns: columns, current: domain.NewStep()}
}

func (r *stepReader) feed(line string) {
	if stepSeparator.MatchString(line) {
		r.closeField()
		r.closeStep()
		return
	}

	if m := fieldMarker.FindStringSubmatch(line); m != nil {
		title := m[1]
		r.closeField()
		// A repeated title starts the next step unless repeats overwrite.
		if !r.columns.Defaults.OverwriteForRepeat && r.current.Has(title) {
			r.closeStep()
		}
		r.field = NewStepItem(title, r.columns.TypeOf(title))
		return
	}

	if r.field != nil {
		r.field.Add(line)
	}
}

func (r *stepReader) closeField() {
	if r.field == nil {
		return
	}
	r.current.Set(r.field.Title, r.field.Value())
	r.field = nil
}

func (r *stepReader) closeStep() {
	if r.current.Len() > 0 {
		r.steps = append(r.steps, r.current)
	}
	r.current = domain.NewStep()
}

func (r *stepReader) finish() []*domain.Step {
	r.closeField()
	r.closeStep()
	return r.steps
}
