package schema

import "strings"

// ValueType is the declared value type of a column.
type ValueType int

const (
	// String columns hold free text, lines joined by newline.
	String ValueType = iota
	// List columns hold bullet items and are expanded into numbered sub-columns.
	List
	// Increment columns are filled with the 1-based step position.
	Increment
)

var valueTypeNames = map[ValueType]string{
	String:    "string",
	List:      "list",
	Increment: "increment",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseValueType maps a declared token to a ValueType. Matching is case-insensitive.
func ParseValueType(token string) (ValueType, error) {
	for t, name := range valueTypeNames {
		if strings.EqualFold(strings.TrimSpace(token), name) {
			return t, nil
		}
	}
	return String, &UnknownTokenError{Field: "type", Token: token}
}

// Alignment is the horizontal alignment of a column's cells.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlignment maps a declared token to an Alignment. Matching is case-insensitive.
func ParseAlignment(token string) (Alignment, error) {
	for a, name := range alignmentNames {
		if strings.EqualFold(strings.TrimSpace(token), name) {
			return a, nil
		}
	}
	return AlignLeft, &UnknownTokenError{Field: "alignment", Token: token}
}

// ColumnCondition declares how one column is typed, sized and filled.
type ColumnCondition struct {
	Type ValueType
	// Width is the fixed display width; zero leaves the backend default.
	Width     int
	Alignment Alignment
	// DuplicatePreviousForBlank copies the previous step's value when a step
	// leaves this column unset.
	DuplicatePreviousForBlank bool
}

// NewCondition builds a condition. Increment columns are always right-aligned.
func NewCondition(typ ValueType, width int, align Alignment, duplicate bool) ColumnCondition {
	if typ == Increment {
		align = AlignRight
	}
	return ColumnCondition{
		Type:                      typ,
		Width:                     width,
		Alignment:                 align,
		DuplicatePreviousForBlank: duplicate,
	}
}

// DefaultCondition is the condition of an undeclared column under the given defaults.
func DefaultCondition(d Defaults) ColumnCondition {
	return NewCondition(String, 0, AlignLeft, d.DuplicatePreviousForBlank)
}
