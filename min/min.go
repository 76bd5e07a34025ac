// Package min implements the pattern-based minifiers for markup,
// stylesheets, and scripts.
//
// Every transform here is format-naive: none of them know about string
// literals, attribute values, or whitespace-sensitive elements. They strip what
// looks like a comment and squeeze what looks like insignificant whitespace.
package min

import (
	"io"
	"io/ioutil"
	"regexp"
	"strings"
	"unicode"

	"github.com/tdewolff/minify"
)

// space matches one whitespace character: ASCII \t through \r, the
// information separators \x1c-\x1f, NEL, and every Unicode separator (which
// covers NBSP and U+2028/U+2029). isSpace is the same class.
const space = `[\t-\r\x1c-\x1f\x85\p{Z}]`

var (
	reSpace        = regexp.MustCompile(space + `+`)
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// isLineBreak reports the characters that end a line: \n, \v, \f, \r, the
// separators \x1c-\x1e, NEL, and U+2028/U+2029.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}

	return false
}

// HTMLFunc is HTML as a minify.MinifierFunc
func HTMLFunc(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
	return apply(HTML, w, r)
}

// CSSFunc is CSS as a minify.MinifierFunc
func CSSFunc(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
	return apply(CSS, w, r)
}

// JSFunc is JS as a minify.MinifierFunc
func JSFunc(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
	return apply(JS, w, r)
}

func apply(tf func(string) string, w io.Writer, r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, tf(string(b)))
	return err
}
