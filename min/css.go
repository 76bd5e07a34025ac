package min

import (
	"regexp"
)

var reCSSPunct = regexp.MustCompile(space + `*([{}:;,])` + space + `*`)

// CSS strips comments from a stylesheet, collapses whitespace, and drops any
// whitespace touching `{ } : ; ,`.
func CSS(s string) string {
	s = reBlockComment.ReplaceAllString(s, "")
	s = reSpace.ReplaceAllString(s, " ")
	s = reCSSPunct.ReplaceAllString(s, "${1}")
	return trim(s)
}
