package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/schema"
)

// Shaper reconciles parsed steps against a column schema.
// The pipeline order is fixed: discovery, carry-forward, list expansion,
// prepend/append splice. Increments are assigned separately by the caller
// once the final step order is known.
type Shaper struct {
	columns    *schema.ColumnConfig
	conditions map[string]schema.ColumnCondition
}

// NewShaper creates a shaper bound to a schema. A nil schema means all defaults.
func NewShaper(columns *schema.ColumnConfig) *Shaper {
	if columns == nil {
		columns = schema.New()
	}
	return &Shaper{
		columns:    columns,
		conditions: columns.AllConditions(),
	}
}

// Shape returns the final column list and shaped copies of the steps.
// The input steps are not modified.
func (s *Shaper) Shape(steps []*domain.Step) ([]string, []*domain.Step) {
	shaped := make([]*domain.Step, len(steps))
	for i, step := range steps {
		shaped[i] = step.Clone()
	}

	columns := Discover(shaped)
	s.CarryForward(shaped)
	columns = s.ExpandLists(columns, shaped)
	columns = s.Splice(columns)
	return columns, shaped
}

// Discover returns the union of all step keys in first-seen order.
func Discover(steps []*domain.Step) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, step := range steps {
		for _, key := range step.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

// CarryForward copies values missing from a step out of the step before it.
// Steps are folded left to right so a carried value can be carried again.
func (s *Shaper) CarryForward(steps []*domain.Step) {
	for i := 1; i < len(steps); i++ {
		prev, cur := steps[i-1], steps[i]
		for _, key := range prev.Keys() {
			if cur.Has(key) || !s.carries(key) {
				continue
			}
			v, _ := prev.Get(key)
			cur.Set(key, domain.CloneValue(v))
		}
	}
}

func (s *Shaper) carries(key string) bool {
	cond, declared := s.conditions[key]
	return !declared || cond.DuplicatePreviousForBlank
}

// ExpandLists replaces each discovered list column with numbered sub-columns
// "<name> (1)" .. "<name> (n)", n being the largest item count of any step.
// A list column with no items at all is dropped.
func (s *Shaper) ExpandLists(columns []string, steps []*domain.Step) []string {
	out := slices.Clone(columns)
	for _, name := range s.columns.ListColumns() {
		pos := slices.Index(out, name)
		if pos < 0 {
			continue
		}

		count := 0
		for _, step := range steps {
			if items, ok := step.Items(name); ok {
				count = max(count, len(items))
			}
		}

		expanded := make([]string, count)
		for i := range expanded {
			expanded[i] = ListColumnName(name, i+1)
		}
		out = slices.Replace(out, pos, pos+1, expanded...)

		for _, step := range steps {
			items, ok := step.Items(name)
			if !ok {
				step.Delete(name)
				continue
			}
			for i, item := range items {
				step.Set(ListColumnName(name, i+1), item)
			}
			step.Delete(name)
		}
	}
	return out
}

// ListColumnName is the header of the n-th (1-based) sub-column of a list column.
func ListColumnName(name string, n int) string {
	return fmt.Sprintf("%s (%d)", name, n)
}

// Splice puts prepend columns at the front and append columns at the end, in
// declared order. A spliced name already present in the body is moved, not
// duplicated.
func (s *Shaper) Splice(columns []string) []string {
	head := s.columns.Prepend.Names()
	var tail []string
	for _, name := range s.columns.Append.Names() {
		if !slices.Contains(head, name) {
			tail = append(tail, name)
		}
	}

	out := make([]string, 0, len(head)+len(columns)+len(tail))
	out = append(out, head...)
	for _, name := range columns {
		if !slices.Contains(head, name) && !slices.Contains(tail, name) {
			out = append(out, name)
		}
	}
	return append(out, tail...)
}

// AssignIncrements sets every increment column of every step to the step's
// 1-based position.
func (s *Shaper) AssignIncrements(steps []*domain.Step) {
	for _, name := range s.columns.IncrementColumns() {
		for i, step := range steps {
			step.Set(name, i+1)
		}
	}
}
