package schema

import (
	"encoding/json"
)

// MarshalText serializes the type as its schema token.
func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a schema token.
func (t *ValueType) UnmarshalText(data []byte) error {
	parsed, err := ParseValueType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText serializes the alignment as its schema token.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a schema token.
func (a *Alignment) UnmarshalText(data []byte) error {
	parsed, err := ParseAlignment(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

type conditionJSON struct {
	Name                      string    `json:"name"`
	Type                      ValueType `json:"type"`
	Width                     int       `json:"width,omitempty"`
	Alignment                 Alignment `json:"alignment"`
	DuplicatePreviousForBlank bool      `json:"duplicate_previous_for_blank"`
}

// MarshalJSON serializes the columns as an ordered array.
func (c Columns) MarshalJSON() ([]byte, error) {
	out := make([]conditionJSON, 0, len(c.order))
	for _, col := range c.order {
		out = append(out, conditionJSON{
			Name:                      col.Name,
			Type:                      col.Condition.Type,
			Width:                     col.Condition.Width,
			Alignment:                 col.Condition.Alignment,
			DuplicatePreviousForBlank: col.Condition.DuplicatePreviousForBlank,
		})
	}
	return json.Marshal(out)
}

type globalJSON struct {
	DuplicatePreviousForBlank bool `json:"duplicate_previous_for_blank"`
	OverwriteForRepeat        bool `json:"overwrite_for_repeat"`
}

type configJSON struct {
	Global     globalJSON `json:"global"`
	Prepend    Columns    `json:"prepend"`
	Conditions Columns    `json:"column_conditions"`
	Append     Columns    `json:"append"`
}

// MarshalJSON serializes the schema with the section names used in schema files.
func (c *ColumnConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(configJSON{
		Global: globalJSON{
			DuplicatePreviousForBlank: c.Defaults.DuplicatePreviousForBlank,
			OverwriteForRepeat:        c.Defaults.OverwriteForRepeat,
		},
		Prepend:    c.Prepend,
		Conditions: c.Conditions,
		Append:     c.Append,
	})
}
