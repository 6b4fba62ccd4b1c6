package wrapper

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed viewer.html
var viewerHTML string

// page is parsed once; html/template's contextual autoescaping guarantees
// the token survives the browser's parser unchanged wherever it lands.
var page = template.Must(template.New("viewer").Parse(viewerHTML))

type pageData struct {
	Token string
	Title string
	Style template.CSS
}

// Render produces the self-contained protected document for a token. The
// optional style block is inlined as-is; the title appears on the prompt
// page. The result needs no external resources to decrypt.
func Render(token, title, style string) ([]byte, error) {
	if title == "" {
		title = "Protected document"
	}

	var buf bytes.Buffer
	err := page.Execute(&buf, pageData{
		Token: token,
		Title: title,
		Style: template.CSS(style),
	})
	if err != nil {
		return nil, fmt.Errorf("render wrapper page: %w", err)
	}
	return buf.Bytes(), nil
}
