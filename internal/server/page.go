package server

import (
	_ "embed"
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed status.html
var statusPage string

// minifyPage minifies the status page including its inline style and script.
func minifyPage(page string) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("text/javascript", js.Minify)

	out, err := m.String("text/html", page)
	if err != nil {
		return nil, fmt.Errorf("minify status page: %w", err)
	}
	return []byte(out), nil
}
