package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// MaxWidth is the widest column a spreadsheet accepts.
const MaxWidth = 255

//go:embed columns.schema.json
var documentSchema []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("columns.schema.json", bytes.NewReader(documentSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("columns.schema.json")
})

// validateDocument checks the structure of a schema file before any column is
// resolved: section shapes, field types and unknown global keys.
func validateDocument(doc *yaml.Node) error {
	var decoded any
	if err := doc.Decode(&decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	instance, err := toJSONValue(decoded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile column schema definition: %w", err)
	}

	if err := compiled.Validate(instance); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &AggregateError{Errors: collectIssues(verr)}
		}
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}

// toJSONValue converts a YAML-decoded value into the representation the JSON
// Schema validator expects (string keys, json.Number).
func toJSONValue(v any) (any, error) {
	encoded, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringKeys(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}

func collectIssues(err *jsonschema.ValidationError) []error {
	var issues []error
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, &ValidationError{
				Key:    locationKey(node.InstanceLocation),
				Reason: strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

// locationKey turns a JSON pointer ("/column_conditions/Step/width") into a
// dotted key ("column_conditions.Step.width").
func locationKey(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}

// Validate checks a resolved condition.
func (c ColumnCondition) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Type, validation.In(String, List, Increment)),
		validation.Field(&c.Width, validation.Min(0), validation.Max(MaxWidth)),
		validation.Field(&c.Alignment, validation.In(AlignLeft, AlignCenter, AlignRight)),
	)
}

// Validate checks every declared column: names must not be blank and each
// condition must be within range.
func (c *ColumnConfig) Validate() error {
	var errs []error
	sections := []struct {
		name    string
		columns *Columns
	}{
		{SectionPrepend, &c.Prepend},
		{SectionConditions, &c.Conditions},
		{SectionAppend, &c.Append},
	}
	for _, section := range sections {
		for _, col := range section.columns.order {
			key := section.name + "." + col.Name
			if strings.TrimSpace(col.Name) == "" {
				errs = append(errs, &ValidationError{Key: key, Reason: "column name must not be blank"})
				continue
			}
			if err := col.Condition.Validate(); err != nil {
				errs = append(errs, &ValidationError{Key: key, Reason: err.Error()})
			}
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
