package assetmin

import (
	"github.com/tdewolff/minify"
	"github.com/thatguystone/assetmin/min"
)

// Minifier is a shareable minifier, keyed by media type
var Minifier = minify.New()

func init() {
	Minifier.AddFunc(htmlType, min.HTMLFunc)
	Minifier.AddFunc(cssType, min.CSSFunc)

	for _, t := range jsTypes {
		Minifier.AddFunc(t, min.JSFunc)
	}
}
