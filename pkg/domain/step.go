package domain

// Step is one record of a document's steps section, keyed by field title.
//
// Keys keep their insertion order: setting an existing key updates the value
// in place, deleting a key removes it from the order. Values are one of
// string, []string (list columns before expansion) or int (increments).
type Step struct {
	keys   []string
	values map[string]any
}

// NewStep creates an empty step.
func NewStep() *Step {
	return &Step{values: make(map[string]any)}
}

// StepOf builds a step from alternating key/value pairs. It is meant for tests
// and fixtures; a trailing key without a value is ignored.
func StepOf(pairs ...any) *Step {
	s := NewStep()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		s.Set(key, pairs[i+1])
	}
	return s
}

// Set stores value under key.
func (s *Step) Set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Step) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is set.
func (s *Step) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key.
func (s *Step) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (s *Step) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of keys.
func (s *Step) Len() int {
	return len(s.keys)
}

// Items returns the list value under key. A string value counts as a single item.
func (s *Step) Items(key string) ([]string, bool) {
	switch v := s.values[key].(type) {
	case []string:
		return v, true
	case string:
		return []string{v}, true
	default:
		return nil, false
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s *Step) Clone() *Step {
	c := &Step{
		keys:   s.Keys(),
		values: make(map[string]any, len(s.values)),
	}
	for k, v := range s.values {
		c.values[k] = CloneValue(v)
	}
	return c
}

// CloneValue copies list values so the copy can be mutated independently.
func CloneValue(v any) any {
	if items, ok := v.([]string); ok {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	return v
}
