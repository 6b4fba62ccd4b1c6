package utils

import (
	"path/filepath"
	"strings"
)

// markdownExtensions are the input extensions treated as Markdown.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

// IsMarkdownPath reports whether the path looks like a Markdown file.
func IsMarkdownPath(path string) bool {
	return markdownExtensions[strings.ToLower(filepath.Ext(path))]
}

// Stem returns the path with its final extension removed.
func Stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// SiblingWithSuffix builds an output path next to the input: the input's
// stem plus the given suffix. SiblingWithSuffix("docs/note.md", ".html")
// yields "docs/note.html".
func SiblingWithSuffix(inputPath, suffix string) string {
	return Stem(inputPath) + suffix
}

// TitleFromPath derives a human-readable document title from a file path:
// the stem of the base name with separators turned into spaces.
func TitleFromPath(path string) string {
	name := Stem(filepath.Base(path))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.TrimSpace(name)
}
