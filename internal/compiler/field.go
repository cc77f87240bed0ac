package compiler

import (
	"regexp"
	"strings"

	"github.com/aretw0/mael/pkg/schema"
)

var bulletMarker = regexp.MustCompile(`^\s*\*\s*`)

// StepItem accumulates the content of one "###" field until the field closes.
// The value type is fixed when the field opens.
type StepItem struct {
	Title string
	Type  schema.ValueType
	lines []string
}

// NewStepItem opens a field.
func NewStepItem(title string, typ schema.ValueType) *StepItem {
	return &StepItem{Title: title, Type: typ}
}

// Add appends one raw content line. List fields strip the bullet marker.
func (i *StepItem) Add(line string) {
	if i.Type == schema.List {
		line = bulletMarker.ReplaceAllString(line, "")
	}
	i.lines = append(i.lines, line)
}

// Value returns the accumulated content, blank-trimmed at both ends: a
// []string for list fields, newline-joined text otherwise.
func (i *StepItem) Value() any {
	lines := TrimBlankLines(i.lines)
	if i.Type == schema.List {
		return lines
	}
	return strings.Join(lines, "\n")
}
