package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders a step value as cell text. Absent values render empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, "\n")
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
