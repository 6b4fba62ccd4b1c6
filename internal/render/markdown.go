package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		// Inline HTML in the source document passes through unchanged;
		// the author is trusted (they are encrypting their own page).
		goldmarkhtml.WithUnsafe(),
	),
)

// MarkdownToHTML converts Markdown to a complete HTML document with an
// optional inline stylesheet and title.
func MarkdownToHTML(source, css, title string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(source), &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return Document(body.String(), css, title), nil
}

// Document wraps an HTML body fragment in the fixed page skeleton.
func Document(body, css, title string) string {
	if title == "" {
		title = "Document"
	}

	var styleTag string
	if css != "" {
		styleTag = "  <style>\n" + css + "\n  </style>\n"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("  <title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString(styleTag)
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
