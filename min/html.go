package min

import (
	"regexp"
)

var (
	reHTMLComment = regexp.MustCompile(`(?s)<!--.*?-->`)
	reBetweenTags = regexp.MustCompile(`>` + space + `+<`)
)

// HTML strips comments from markup and collapses its whitespace.
//
// Comments go first: a comment sitting between two tags must not survive long
// enough to keep the whitespace around it from being squeezed. An unterminated
// "<!--" is left alone.
func HTML(s string) string {
	s = reHTMLComment.ReplaceAllString(s, "")
	s = reBetweenTags.ReplaceAllString(s, "><")
	s = reSpace.ReplaceAllString(s, " ")
	return trim(s)
}
