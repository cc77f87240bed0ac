// Package variables implements "{{ name }}" placeholder substitution.
//
// Substitution is applied per cell at render time. Shaped steps keep their raw
// values so any consumer can still read them unsubstituted.
package variables

import (
	"regexp"
	"strings"
)

// Map holds variable name to replacement text.
type Map map[string]string

var placeholder = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// Apply substitutes placeholders in string values. Any other value (numbers,
// lists, nil) is returned unchanged.
func Apply(value any, vars Map) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return ApplyString(s, vars)
}

// ApplyString replaces every "{{ name }}" whose name is known. Unknown names
// are left as literal text. Replacement text is not scanned again.
func ApplyString(s string, vars Map) string {
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return match
	})
}

// Merge returns a new map holding m overridden by each of overrides in turn.
func (m Map) Merge(overrides ...map[string]string) Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}
