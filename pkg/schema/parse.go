package schema

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Top-level sections of a schema file.
const (
	SectionGlobal     = "global"
	SectionPrepend    = "prepend"
	SectionConditions = "column_conditions"
	SectionAppend     = "append"
)

type rawGlobal struct {
	DuplicatePreviousForBlank *bool `mapstructure:"duplicate_previous_for_blank"`
	OverwriteForRepeat        *bool `mapstructure:"overwrite_for_repeat"`
}

type rawCondition struct {
	Type                      *string `mapstructure:"type"`
	Width                     *int    `mapstructure:"width"`
	Alignment                 *string `mapstructure:"alignment"`
	DuplicatePreviousForBlank *bool   `mapstructure:"duplicate_previous_for_blank"`
}

// Parse reads a column schema file (YAML or JSON).
// A missing or empty file yields the all-defaults schema.
func Parse(path string) (*ColumnConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read column schema: %w", err)
	}

	cfg, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseBytes parses schema content. Declaration order of columns is preserved.
func ParseBytes(data []byte) (*ColumnConfig, error) {
	cfg := New()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if len(root.Content) == 0 {
		return cfg, nil
	}
	doc := root.Content[0]
	if isNull(doc) {
		return cfg, nil
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	if node := lookup(doc, SectionGlobal); node != nil {
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, SectionGlobal, err)
		}
		var g rawGlobal
		if err := mapstructure.Decode(raw, &g); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchema, SectionGlobal, err)
		}
		cfg.Defaults.DuplicatePreviousForBlank = g.DuplicatePreviousForBlank != nil && *g.DuplicatePreviousForBlank
		cfg.Defaults.OverwriteForRepeat = g.OverwriteForRepeat != nil && *g.OverwriteForRepeat
	}

	sections := []struct {
		name   string
		target *Columns
	}{
		{SectionPrepend, &cfg.Prepend},
		{SectionConditions, &cfg.Conditions},
		{SectionAppend, &cfg.Append},
	}
	for _, section := range sections {
		node := lookup(doc, section.name)
		if node == nil || isNull(node) {
			continue
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			name := node.Content[i].Value
			var raw map[string]any
			if err := node.Content[i+1].Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidSchema, section.name, name, err)
			}
			cond, err := ParseCondition(raw, cfg.Defaults)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section.name, name, err)
			}
			section.target.Set(name, cond)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseCondition maps a raw per-column declaration to a condition.
// An absent type is string, an absent width is zero (backend default), an
// absent alignment is left and an absent duplicate_previous_for_blank inherits
// the defaults.
func ParseCondition(raw map[string]any, defaults Defaults) (ColumnCondition, error) {
	var rc rawCondition
	if err := mapstructure.Decode(raw, &rc); err != nil {
		return ColumnCondition{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	typ := String
	if rc.Type != nil {
		t, err := ParseValueType(*rc.Type)
		if err != nil {
			return ColumnCondition{}, err
		}
		typ = t
	}

	align := AlignLeft
	if rc.Alignment != nil {
		a, err := ParseAlignment(*rc.Alignment)
		if err != nil {
			return ColumnCondition{}, err
		}
		align = a
	}

	width := 0
	if rc.Width != nil {
		width = *rc.Width
	}

	duplicate := defaults.DuplicatePreviousForBlank
	if rc.DuplicatePreviousForBlank != nil {
		duplicate = *rc.DuplicatePreviousForBlank
	}

	return NewCondition(typ, width, align, duplicate), nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
