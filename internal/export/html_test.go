package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestHTMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	if err := (&HTMLExporter{}).Export(sampleRecap(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got := buf.String()

	want := []string{
		"<!DOCTYPE html>",
		"<title>Development Session: GitHub &amp; VS Code - Mar 14, 2026</title>",
		"<h2>Insights</h2>",
		"<table>",
		"<td>Review pull request</td>",
		`type="checkbox"`,
		"<code>storage</code>",
		"</html>",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("HTML output should contain %q", w)
		}
	}
}

func TestHTMLExporter_EscapesRawHTML(t *testing.T) {
	recap := emptyRecap()
	recap.Title = "<script>alert(1)</script>"

	var buf bytes.Buffer
	if err := (&HTMLExporter{}).Export(recap, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("raw HTML in captured text should not reach the page")
	}
}
