// Package assetmin minifies the three assets of a small web front end: one
// markup file, one stylesheet, and one script.
package assetmin

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// A Kind identifies one of the three assets
type Kind int

const (
	// Markup is the HTML document
	Markup Kind = iota

	// Stylesheet is the CSS document
	Stylesheet

	// Script is the JavaScript document
	Script
)

// Kinds lists every Kind in the order assets are written
var Kinds = []Kind{Markup, Stylesheet, Script}

const (
	htmlType = "text/html"
	cssType  = "text/css"
	jsType   = "application/javascript"
)

func (k Kind) String() string {
	switch k {
	case Markup:
		return "markup"
	case Stylesheet:
		return "stylesheet"
	case Script:
		return "script"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// MediaType is the media type used to look up the Kind's minifier
func (k Kind) MediaType() string {
	switch k {
	case Markup:
		return htmlType
	case Stylesheet:
		return cssType
	case Script:
		return jsType
	}

	return ""
}

// ParseKind parses the name of a Kind, as returned by Kind.String()
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown asset kind %q", s)
}

// Names maps each Kind to the file name it's read from and written to
type Names struct {
	Markup     string `yaml:"markup" param:"markup"`
	Stylesheet string `yaml:"stylesheet" param:"stylesheet"`
	Script     string `yaml:"script" param:"script"`
}

// DefaultNames are the file names used when nothing else is configured
var DefaultNames = Names{
	Markup:     "index.html",
	Stylesheet: "styles.css",
	Script:     "app.js",
}

// Get gets the file name for the given Kind
func (ns Names) Get(k Kind) string {
	switch k {
	case Markup:
		return ns.Markup
	case Stylesheet:
		return ns.Stylesheet
	case Script:
		return ns.Script
	}

	return ""
}

// WithDefaults fills every empty name from DefaultNames
func (ns Names) WithDefaults() Names {
	if ns.Markup == "" {
		ns.Markup = DefaultNames.Markup
	}

	if ns.Stylesheet == "" {
		ns.Stylesheet = DefaultNames.Stylesheet
	}

	if ns.Script == "" {
		ns.Script = DefaultNames.Script
	}

	return ns
}

// Validate checks that every name is a distinct, bare file name
func (ns Names) Validate() error {
	seen := map[string]Kind{}

	for _, k := range Kinds {
		name := ns.Get(k)

		switch {
		case name == "":
			return fmt.Errorf("%s: file name is empty", k)

		case name == "." || name == ".." || strings.ContainsAny(name, `/\`):
			return fmt.Errorf("%s: %q is not a bare file name", k, name)
		}

		if other, ok := seen[name]; ok {
			return fmt.Errorf("%s: %q is already used by %s", k, name, other)
		}

		seen[name] = k
	}

	return nil
}

// A MediaTypeMismatchError is reported when a file's extension implies a
// different media type than the Kind it was configured for
type MediaTypeMismatchError struct {
	Kind  Kind
	Name  string
	Guess string // Media type implied by the extension
}

func (err MediaTypeMismatchError) Error() string {
	return fmt.Sprintf(
		"%s file %q looks like %q, but will be minified as %q",
		err.Kind, err.Name, err.Guess, err.Kind.MediaType())
}

// checkMediaType checks that a file's extension agrees with its Kind. Unknown
// extensions are fine: the Kind decides.
func checkMediaType(k Kind, name string) error {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == k.MediaType() {
		return nil
	}

	if k == Script && isJSType(mediaType) {
		return nil
	}

	return MediaTypeMismatchError{
		Kind:  k,
		Name:  name,
		Guess: mediaType,
	}
}

var jsTypes = []string{
	jsType,
	"application/x-javascript",
	"application/ecmascript",
	"text/javascript",
	"text/ecmascript",
}

func isJSType(mediaType string) bool {
	for _, t := range jsTypes {
		if t == mediaType {
			return true
		}
	}

	return false
}
