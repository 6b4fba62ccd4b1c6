package ui

import "testing"

func TestEnsureNewline(t *testing.T) {
	cases := map[string]string{
		"":          "\n",
		"done":      "done\n",
		"done\n":    "done\n",
		"two\nline": "two\nline\n",
	}
	for in, want := range cases {
		if got := EnsureNewline(in); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatterFallbackWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Code.Sprint("pagelock protect"); got != "`pagelock protect`" {
		t.Errorf("Code fallback = %q", got)
	}
	if got := Highlight.Sprint("My Title"); got != "'My Title'" {
		t.Errorf("Highlight fallback = %q", got)
	}
	if got := Path.Sprint("out.html"); got != "out.html" {
		t.Errorf("Path fallback = %q", got)
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Success.Sprintf("%d files", 3); got != "3 files" {
		t.Errorf("Sprintf = %q", got)
	}
}
