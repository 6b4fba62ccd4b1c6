package render

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	minifyhtml "github.com/tdewolff/minify/v2/html"
)

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", minifyhtml.Minify)
	return m
}()

// MinifyHTML shrinks an HTML document before encryption. Less plaintext
// means a smaller embedded token, which dominates the artifact's size.
func MinifyHTML(document []byte) ([]byte, error) {
	out, err := minifier.Bytes("text/html", document)
	if err != nil {
		return nil, fmt.Errorf("minify html: %w", err)
	}
	return out, nil
}
