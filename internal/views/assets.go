package views

import (
	_ "embed"
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// TextCSS is the media type the stylesheet is served with.
const TextCSS = "text/css"

//go:embed static/app.css
var stylesheet []byte

// Stylesheet returns the application stylesheet, minified when asked.
func Stylesheet(minified bool) ([]byte, error) {
	if !minified {
		return stylesheet, nil
	}

	m := minify.New()
	m.AddFunc(TextCSS, css.Minify)

	out, err := m.Bytes(TextCSS, stylesheet)
	if err != nil {
		return nil, fmt.Errorf("minify stylesheet: %w", err)
	}
	return out, nil
}
