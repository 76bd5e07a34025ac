package min

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/tdewolff/minify"
	"github.com/thatguystone/cog/check"
)

type minTest struct {
	name string
	in   string
	out  string
}

func runMinTests(t *testing.T, tf func(string) string, tests []minTest) {
	c := check.New(t)

	for _, test := range tests {
		test := test
		c.Run(test.name, func(c *check.C) {
			c.Equal(tf(test.in), test.out)
		})
	}
}

func TestMinIdempotent(t *testing.T) {
	c := check.New(t)

	tests := []struct {
		name string
		tf   func(string) string
		in   string
	}{
		{
			name: "HTML",
			tf:   HTML,
			in: "<!doctype html>\n<html>\n  <head>\n    <!-- meta -->\n" +
				"    <title>Pins</title>\n  </head>\n  <body>\n" +
				"    <p>hello   world</p>\n  </body>\n</html>\n",
		},
		{
			name: "CSS",
			tf:   CSS,
			in: "/* theme */\nbody {\n  margin : 0;\n  font-family: a, b;\n}\n" +
				"h1 ,\nh2 { color : red ; }\n",
		},
		{
			name: "JS",
			tf:   JS,
			in: "// setup\nconst pins = [\n  { n : 1 , label : 'GND' },\n];\n\n" +
				"/* render\n   all */\nfunction render ( el ) {\n  el.hidden = false ;\n}\n",
		},
	}

	for _, test := range tests {
		test := test
		c.Run(test.name, func(c *check.C) {
			once := test.tf(test.in)
			twice := test.tf(once)

			c.Equal(once, twice)
			c.True(len(once) < len(test.in))
		})
	}
}

func TestMinUTF8(t *testing.T) {
	c := check.New(t)

	fns := map[string]func(string) string{
		"HTML": HTML,
		"CSS":  CSS,
		"JS":   JS,
	}

	in := "<p>héllo — ✓</p> /* ünïcode */\n// 日本語\nx = \"näive\" ;\n"
	for name, tf := range fns {
		out := tf(in)
		c.True(utf8.ValidString(out), "%s produced invalid UTF-8: %q", name, out)
	}

	c.Contains(HTML(in), "héllo — ✓")
	c.Contains(JS(in), `x="näive";`)
}

func TestMinFuncs(t *testing.T) {
	c := check.New(t)

	m := minify.New()
	m.AddFunc("text/html", HTMLFunc)
	m.AddFunc("text/css", CSSFunc)
	m.AddFunc("application/javascript", JSFunc)

	html := "<a>\n  <b>\n<!-- c --></b></a>"
	out, err := m.String("text/html", html)
	c.Must.Nil(err)
	c.Equal(out, HTML(html))

	css := "a { b : c ; }"
	out, err = m.String("text/css", css)
	c.Must.Nil(err)
	c.Equal(out, CSS(css))

	js := "// x\nvar a = 1 ;"
	out, err = m.String("application/javascript", js)
	c.Must.Nil(err)
	c.Equal(out, JS(js))
}

func TestSpaceClass(t *testing.T) {
	c := check.New(t)

	var bad []string
	for r := rune(0); r <= 0xffff; r++ {
		if !utf8.ValidRune(r) {
			continue
		}

		if reSpace.MatchString(string(r)) != isSpace(r) {
			bad = append(bad, fmt.Sprintf("%U", r))
		}
	}

	c.Len(bad, 0)

	for _, r := range "\n\v\f\r\x1c\x1d\x1e\u0085\u2028\u2029" {
		c.True(isLineBreak(r), "%U", r)
		c.True(isSpace(r), "%U", r)
	}

	c.False(isLineBreak('\t'))
	c.False(isLineBreak('\x1f'))
	c.False(isLineBreak(' '))
}
