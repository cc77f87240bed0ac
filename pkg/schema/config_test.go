package schema_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mael/pkg/schema"
)

const sampleSchema = `
global:
  duplicate_previous_for_blank: true
  overwrite_for_repeat: false
prepend:
  No.:
    type: increment
    width: 6
    alignment: left
  Section:
column_conditions:
  Categories:
    type: LIST
  Description:
    width: 50
    alignment: Center
    duplicate_previous_for_blank: false
  Expected:
    width: 50
append:
  Timestamp:
  Result:
    alignment: right
  Comment:
    width: 50
`

func TestParseBytes_PreservesDeclarationOrder(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, []string{"No.", "Section"}, cfg.Prepend.Names())
	assert.Equal(t, []string{"Categories", "Description", "Expected"}, cfg.Conditions.Names())
	assert.Equal(t, []string{"Timestamp", "Result", "Comment"}, cfg.Append.Names())
	assert.True(t, cfg.Defaults.DuplicatePreviousForBlank)
	assert.False(t, cfg.Defaults.OverwriteForRepeat)
}

func TestParseBytes_ResolvesConditions(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte(sampleSchema))
	require.NoError(t, err)

	no, ok := cfg.Prepend.Get("No.")
	require.True(t, ok)
	assert.Equal(t, schema.Increment, no.Type)
	assert.Equal(t, 6, no.Width)
	assert.Equal(t, schema.AlignRight, no.Alignment, "increment columns are forced right")

	section, _ := cfg.Prepend.Get("Section")
	assert.Equal(t, schema.String, section.Type)
	assert.Equal(t, 0, section.Width)
	assert.Equal(t, schema.AlignLeft, section.Alignment)
	assert.True(t, section.DuplicatePreviousForBlank, "inherits the global flag")

	desc, _ := cfg.Conditions.Get("Description")
	assert.Equal(t, schema.AlignCenter, desc.Alignment)
	assert.False(t, desc.DuplicatePreviousForBlank, "explicit value overrides the global flag")

	cats, _ := cfg.Conditions.Get("Categories")
	assert.Equal(t, schema.List, cats.Type)
}

func TestColumnConfig_Queries(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, []string{"Categories"}, cfg.ListColumns())
	assert.Equal(t, []string{"No."}, cfg.IncrementColumns())
	assert.Equal(t, schema.List, cfg.TypeOf("Categories"))
	assert.Equal(t, schema.String, cfg.TypeOf("Undeclared"))
	assert.Equal(t, schema.String, cfg.TypeOf("No."), "type_of only consults body columns")
	assert.True(t, cfg.IsDeclared("Result"))
	assert.False(t, cfg.IsDeclared("Undeclared"))

	all := cfg.AllConditions()
	assert.Len(t, all, 8)
}

func TestColumnConfig_AllConditionsPrecedence(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte(`
prepend:
  Shared:
    width: 1
column_conditions:
  Shared:
    width: 2
  Body:
    width: 3
append:
  Body:
    width: 4
  Tail:
    width: 5
`))
	require.NoError(t, err)

	all := cfg.AllConditions()
	assert.Equal(t, 1, all["Shared"].Width)
	assert.Equal(t, 3, all["Body"].Width)
	assert.Equal(t, 5, all["Tail"].Width)
	assert.Equal(t, 3, cfg.Condition("Body").Width)

	undeclared := cfg.Condition("Nope")
	assert.Equal(t, schema.String, undeclared.Type)
	assert.Equal(t, schema.AlignLeft, undeclared.Alignment)
}

func TestParseBytes_EmptyYieldsDefaults(t *testing.T) {
	for _, content := range []string{"", "\n", "~", "# only a comment\n"} {
		cfg, err := schema.ParseBytes([]byte(content))
		require.NoError(t, err, "content %q", content)
		assert.Equal(t, 0, cfg.Conditions.Len())
		assert.False(t, cfg.Defaults.DuplicatePreviousForBlank)
		assert.False(t, cfg.Defaults.OverwriteForRepeat)
	}
}

func TestParse_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := schema.Parse(filepath.Join(t.TempDir(), "columns.yml"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Prepend.Len()+cfg.Conditions.Len()+cfg.Append.Len())
}

func TestParse_ReadsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"column_conditions": {"Step": {"type": "list"}, "Note": {"width": 20}}}`), 0644))

	cfg, err := schema.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Step", "Note"}, cfg.Conditions.Names())
	assert.Equal(t, schema.List, cfg.TypeOf("Step"))
}

func TestParseBytes_UnknownTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"type", "column_conditions:\n  A:\n    type: number\n", "type"},
		{"alignment", "append:\n  A:\n    alignment: justify\n", "alignment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.ParseBytes([]byte(tt.input))
			require.Error(t, err)

			var tokenErr *schema.UnknownTokenError
			require.True(t, errors.As(err, &tokenErr))
			assert.Equal(t, tt.field, tokenErr.Field)
			assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		})
	}
}

func TestParseBytes_StructuralErrors(t *testing.T) {
	tests := map[string]string{
		"width not integer":   "column_conditions:\n  A:\n    width: wide\n",
		"flag not boolean":    "global:\n  overwrite_for_repeat: sometimes\n",
		"unknown global key":  "global:\n  colour: red\n",
		"section not mapping": "prepend:\n  - No.\n",
		"root not mapping":    "- a\n- b\n",
		"malformed yaml":      "column_conditions: [\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := schema.ParseBytes([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		})
	}
}

func TestParseBytes_WidthOutOfRange(t *testing.T) {
	_, err := schema.ParseBytes([]byte("column_conditions:\n  A:\n    width: 300\n"))
	require.Error(t, err)

	issues := schema.ValidationErrors(err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Error(), "column_conditions.A")
}

func TestParseCondition_Defaults(t *testing.T) {
	cond, err := schema.ParseCondition(nil, schema.Defaults{DuplicatePreviousForBlank: true})
	require.NoError(t, err)
	assert.Equal(t, schema.NewCondition(schema.String, 0, schema.AlignLeft, true), cond)

	cond, err = schema.ParseCondition(map[string]any{"type": "increment", "alignment": "center"}, schema.Defaults{})
	require.NoError(t, err)
	assert.Equal(t, schema.AlignRight, cond.Alignment)
}

func TestColumnConfig_MarshalJSON(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte("prepend:\n  No.:\n    type: increment\n"))
	require.NoError(t, err)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"global": {"duplicate_previous_for_blank": false, "overwrite_for_repeat": false},
		"prepend": [{"name": "No.", "type": "increment", "alignment": "right", "duplicate_previous_for_blank": false}],
		"column_conditions": [],
		"append": []
	}`, string(data))
}
