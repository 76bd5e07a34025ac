package min

import (
	"regexp"
	"strings"
)

var reJSPunct = regexp.MustCompile(space + `*([{}();,:=])` + space + `*`)

// JS compacts a script onto a single line.
//
// Blank lines and lines starting with "//" are dropped, the rest are trimmed
// and joined with spaces. "\r\n", "\r", and U+2028 end a line as well as
// "\n" does. Block comments are removed after the join, so one that spanned
// several lines is still matched. Anything that depends on a newline ending a
// statement is not accounted for.
func JS(s string) string {
	// Empty lines are dropped anyway, so FieldsFunc skipping them is fine
	lines := strings.FieldsFunc(s, isLineBreak)

	kept := lines[:0]
	for _, line := range lines {
		line = trim(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		kept = append(kept, line)
	}

	s = strings.Join(kept, " ")
	s = reBlockComment.ReplaceAllString(s, "")
	s = reSpace.ReplaceAllString(s, " ")
	s = reJSPunct.ReplaceAllString(s, "${1}")
	return trim(s)
}
