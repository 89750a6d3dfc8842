package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/iksnae/activity-recap/internal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.25rem 0.5rem; }
code { background: #f3f3f3; padding: 0 0.2rem; }
</style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>\n"

// HTMLExporter exports recaps as a standalone HTML page
type HTMLExporter struct{}

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Export renders the Markdown form of a recap to HTML
func (e *HTMLExporter) Export(recap *internal.GeneratedContent, w io.Writer) error {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(recap)), &body); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}

	if _, err := fmt.Fprintf(w, htmlHeader, html.EscapeString(recap.Title)); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}
