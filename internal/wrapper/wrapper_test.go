package wrapper

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"pagelock/internal/crypt"
)

func v1Token(t *testing.T, plaintext, password string) string {
	t.Helper()
	f, err := crypt.FormatFor(1)
	if err != nil {
		t.Fatalf("FormatFor(1) failed: %v", err)
	}
	token, err := crypt.EncryptWithFormat([]byte(plaintext), password, f)
	if err != nil {
		t.Fatalf("EncryptWithFormat failed: %v", err)
	}
	return token
}

var tokenAttrPattern = regexp.MustCompile(`data-token="([^"]+)"`)

func TestRenderEmbedsTokenVerbatim(t *testing.T) {
	token := v1Token(t, "<h1>secret</h1>", "Tr0ub4dor&3")

	page, err := Render(token, "My Page", "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The base64+dot alphabet needs no escaping in an HTML attribute, so
	// the token must appear byte-for-byte.
	if !bytes.Contains(page, []byte(token)) {
		t.Fatal("Token does not appear verbatim in the artifact")
	}
}

func TestRenderedTokenRoundTripsThroughArtifact(t *testing.T) {
	const secret = "<h1>Top secret</h1>"
	token := v1Token(t, secret, "Tr0ub4dor&3")

	page, err := Render(token, "", "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	m := tokenAttrPattern.FindSubmatch(page)
	if m == nil {
		t.Fatal("No data-token attribute in the artifact")
	}

	plaintext, err := crypt.Decrypt(string(m[1]), "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Decrypting the embedded token failed: %v", err)
	}
	if string(plaintext) != secret {
		t.Errorf("Expected %q, got %q", secret, plaintext)
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	token := v1Token(t, "x", "Tr0ub4dor&3")

	page, err := Render(token, `</title><script>alert(1)</script>`, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if bytes.Contains(page, []byte("<script>alert(1)</script>")) {
		t.Error("Title was not escaped for its embedding context")
	}
}

func TestRenderInlinesStyle(t *testing.T) {
	token := v1Token(t, "x", "Tr0ub4dor&3")
	css := "article { max-width: 40rem; }"

	page, err := Render(token, "", css)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Contains(page, []byte(css)) {
		t.Error("Expected the stylesheet to be inlined unchanged")
	}

	without, err := Render(token, "", "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if bytes.Contains(without, []byte(css)) {
		t.Error("Stylesheet leaked into a render without one")
	}
}

func TestRenderIsSelfContained(t *testing.T) {
	token := v1Token(t, "x", "Tr0ub4dor&3")

	page, err := Render(token, "", "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Fully offline: no external scripts, styles, or network calls.
	for _, forbidden := range []string{"src=\"http", "href=\"http", "fetch(", "XMLHttpRequest"} {
		if bytes.Contains(page, []byte(forbidden)) {
			t.Errorf("Artifact references an external resource: %s", forbidden)
		}
	}
	if !bytes.Contains(page, []byte("crypto.subtle")) {
		t.Error("Artifact is missing the inline decryption engine")
	}
}

// The viewer's FORMATS table is the second implementation of the frozen
// parameter table. This test parses it out of the page source and checks
// it against the Go side, entry for entry.
func TestViewerFormatTableMatchesGo(t *testing.T) {
	entryPattern := regexp.MustCompile(
		`(\d+):\s*\{\s*iterations:\s*(\d+),\s*saltLen:\s*(\d+),\s*nonceLen:\s*(\d+),\s*keyBits:\s*(\d+)\s*\}`)

	entries := entryPattern.FindAllStringSubmatch(viewerHTML, -1)
	versions := crypt.Versions()
	if len(entries) != len(versions) {
		t.Fatalf("Viewer declares %d format entries, Go declares %d", len(entries), len(versions))
	}

	seen := map[int]bool{}
	for _, e := range entries {
		version, _ := strconv.Atoi(e[1])
		iterations, _ := strconv.Atoi(e[2])
		saltLen, _ := strconv.Atoi(e[3])
		nonceLen, _ := strconv.Atoi(e[4])
		keyBits, _ := strconv.Atoi(e[5])

		f, err := crypt.FormatFor(version)
		if err != nil {
			t.Errorf("Viewer declares version %d unknown to Go: %v", version, err)
			continue
		}

		if iterations != f.Iterations {
			t.Errorf("Version %d: viewer iterations %d, Go %d", version, iterations, f.Iterations)
		}
		if saltLen != f.SaltLen {
			t.Errorf("Version %d: viewer saltLen %d, Go %d", version, saltLen, f.SaltLen)
		}
		if nonceLen != f.NonceLen {
			t.Errorf("Version %d: viewer nonceLen %d, Go %d", version, nonceLen, f.NonceLen)
		}
		if keyBits != f.KeyLen*8 {
			t.Errorf("Version %d: viewer keyBits %d, Go %d", version, keyBits, f.KeyLen*8)
		}
		seen[version] = true
	}

	for _, v := range versions {
		if !seen[v] {
			t.Errorf("Go version %d missing from the viewer's table", v)
		}
	}
}

func TestViewerAssociatedDataMatchesGo(t *testing.T) {
	want := `var AAD_PREFIX = "` + crypt.AADPrefix + `";`
	if !strings.Contains(viewerHTML, want) {
		t.Errorf("Viewer AAD prefix out of sync: expected %s", want)
	}
}

func TestViewerShowsOneGenericFailureMessage(t *testing.T) {
	// Malformed tokens and failed authentication must be reported
	// identically to the viewer.
	if !strings.Contains(viewerHTML, "Incorrect password or corrupted data.") {
		t.Error("Viewer is missing the generic failure message")
	}
	if strings.Contains(viewerHTML, "malformed") || strings.Contains(viewerHTML, "wrong password") {
		t.Error("Viewer leaks which failure mode occurred")
	}
}
