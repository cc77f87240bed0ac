package schema

// Defaults are the schema-wide settings every condition falls back to.
type Defaults struct {
	// OverwriteForRepeat lets a repeated field title overwrite the value in the
	// current step instead of starting a new step.
	OverwriteForRepeat bool
	// DuplicatePreviousForBlank is inherited by conditions that do not set it.
	DuplicatePreviousForBlank bool
}

// Column is one named entry of an ordered column mapping.
type Column struct {
	Name      string
	Condition ColumnCondition
}

// Columns is an ordered mapping of column name to condition.
type Columns struct {
	order []Column
	index map[string]int
}

// Set adds or replaces a column. A replaced column keeps its original position.
func (c *Columns) Set(name string, cond ColumnCondition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.order[i].Condition = cond
		return
	}
	c.index[name] = len(c.order)
	c.order = append(c.order, Column{Name: name, Condition: cond})
}

// Get returns the condition of name.
func (c *Columns) Get(name string) (ColumnCondition, bool) {
	i, ok := c.index[name]
	if !ok {
		return ColumnCondition{}, false
	}
	return c.order[i].Condition, true
}

// Names returns the column names in declaration order.
func (c *Columns) Names() []string {
	out := make([]string, len(c.order))
	for i, col := range c.order {
		out[i] = col.Name
	}
	return out
}

// All returns the columns in declaration order.
func (c *Columns) All() []Column {
	out := make([]Column, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.order)
}

// ColumnConfig is the declarative column schema of a conversion run.
// It is built once by Parse and treated as immutable afterwards.
type ColumnConfig struct {
	Defaults Defaults
	// Prepend columns are placed before the body columns.
	Prepend Columns
	// Conditions describe body columns, the ones fields are parsed into.
	Conditions Columns
	// Append columns are placed after the body columns.
	Append Columns
}

// New returns a schema in its all-defaults state.
func New() *ColumnConfig {
	return &ColumnConfig{}
}

// AllConditions merges the three mappings. On a name collision the prepend
// declaration wins over the body one, and the body one over append.
func (c *ColumnConfig) AllConditions() map[string]ColumnCondition {
	out := make(map[string]ColumnCondition, c.Prepend.Len()+c.Conditions.Len()+c.Append.Len())
	for _, group := range []*Columns{&c.Append, &c.Conditions, &c.Prepend} {
		for _, col := range group.order {
			out[col.Name] = col.Condition
		}
	}
	return out
}

// Condition resolves the condition of any column, declared or not.
func (c *ColumnConfig) Condition(name string) ColumnCondition {
	for _, group := range []*Columns{&c.Prepend, &c.Conditions, &c.Append} {
		if cond, ok := group.Get(name); ok {
			return cond
		}
	}
	return DefaultCondition(c.Defaults)
}

// IsDeclared reports whether name appears in any of the three mappings.
func (c *ColumnConfig) IsDeclared(name string) bool {
	_, p := c.Prepend.Get(name)
	_, b := c.Conditions.Get(name)
	_, a := c.Append.Get(name)
	return p || b || a
}

// ListColumns returns the body columns declared as list, in declaration order.
func (c *ColumnConfig) ListColumns() []string {
	var out []string
	for _, col := range c.Conditions.order {
		if col.Condition.Type == List {
			out = append(out, col.Name)
		}
	}
	return out
}

// IncrementColumns returns the prepend and append columns declared as increment.
// Body increments are not supported.
func (c *ColumnConfig) IncrementColumns() []string {
	var out []string
	seen := make(map[string]bool)
	for _, group := range []*Columns{&c.Prepend, &c.Append} {
		for _, col := range group.order {
			if col.Condition.Type == Increment && !seen[col.Name] {
				seen[col.Name] = true
				out = append(out, col.Name)
			}
		}
	}
	return out
}

// TypeOf returns the declared type of a body column. Undeclared columns are
// always free text.
func (c *ColumnConfig) TypeOf(name string) ValueType {
	if cond, ok := c.Conditions.Get(name); ok {
		return cond.Type
	}
	return String
}
