package utils

import "testing"

func TestIsMarkdownPath(t *testing.T) {
	cases := map[string]bool{
		"notes.md":        true,
		"notes.MD":        true,
		"notes.markdown":  true,
		"notes.mdown":     true,
		"page.html":       false,
		"archive.md.html": false,
		"README":          false,
	}
	for path, want := range cases {
		if got := IsMarkdownPath(path); got != want {
			t.Errorf("IsMarkdownPath(%q) = %t, want %t", path, got, want)
		}
	}
}

func TestSiblingWithSuffix(t *testing.T) {
	cases := []struct {
		input, suffix, want string
	}{
		{"docs/note.md", ".html", "docs/note.html"},
		{"note.md", ".protected.html", "note.protected.html"},
		{"no-extension", ".html", "no-extension.html"},
	}
	for _, tc := range cases {
		if got := SiblingWithSuffix(tc.input, tc.suffix); got != tc.want {
			t.Errorf("SiblingWithSuffix(%q, %q) = %q, want %q", tc.input, tc.suffix, got, tc.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := map[string]string{
		"docs/meeting-notes.md": "meeting notes",
		"weekly_report.html":    "weekly report",
		"/tmp/x/Trip Report.md": "Trip Report",
		"plain":                 "plain",
	}
	for path, want := range cases {
		if got := TitleFromPath(path); got != want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestStem(t *testing.T) {
	if got := Stem("a/b/c.protected.html"); got != "a/b/c.protected" {
		t.Errorf("Stem removed more than the final extension: %q", got)
	}
}
