package excel

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSheetNameLength is the longest sheet name a workbook accepts.
const MaxSheetNameLength = 31

var invalidSheetChars = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SheetName turns a document title into a valid sheet name that does not
// collide (case-insensitively) with any name in used.
func SheetName(title string, used map[string]bool) string {
	base := strings.Trim(invalidSheetChars.Replace(strings.TrimSpace(title)), "'")
	if base == "" {
		base = "Sheet"
	}
	name := truncate(base, MaxSheetNameLength)
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(base, MaxSheetNameLength-utf8.RuneCountInString(suffix)) + suffix
	}
	return name
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
