package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

// MarkdownExporter exports recaps in Markdown format
type MarkdownExporter struct{}

// Export exports a recap to Markdown format
func (e *MarkdownExporter) Export(recap *internal.GeneratedContent, w io.Writer) error {
	var buf bytes.Buffer
	writeMarkdown(&buf, recap)
	_, err := w.Write(buf.Bytes())
	return err
}

// Markdown renders a recap to a Markdown string
func Markdown(recap *internal.GeneratedContent) string {
	var buf bytes.Buffer
	writeMarkdown(&buf, recap)
	return buf.String()
}

func writeMarkdown(buf *bytes.Buffer, recap *internal.GeneratedContent) {
	fmt.Fprintf(buf, "# %s\n\n", escapeMarkdown(recap.Title))
	if recap.Summary != "" {
		fmt.Fprintf(buf, "%s\n\n", escapeMarkdown(recap.Summary))
	}

	writeList(buf, "Insights", recap.Insights, "- ")
	writeList(buf, "Key Takeaways", recap.KeyTakeaways, "- ")
	writeList(buf, "Action Items", recap.ActionItems, "- [ ] ")
	writeList(buf, "Related Topics", recap.RelatedTopics, "- ")

	if len(recap.Timeline) > 0 {
		buf.WriteString("## Timeline\n\n")
		buf.WriteString("| Time | Event | Importance |\n")
		buf.WriteString("|------|-------|------------|\n")
		for _, entry := range recap.Timeline {
			fmt.Fprintf(buf, "| %s | %s | %s |\n", escapeCell(entry.Time), escapeCell(entry.Event), entry.Importance)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("---\n\n")
	if len(recap.Tags) > 0 {
		tags := make([]string, len(recap.Tags))
		for i, tag := range recap.Tags {
			tags[i] = "`" + tag + "`"
		}
		fmt.Fprintf(buf, "**Tags:** %s  \n", strings.Join(tags, " "))
	}
	fmt.Fprintf(buf, "**Confidence:** %d%%\n", recap.Confidence)
}

func writeList(buf *bytes.Buffer, heading string, items []string, bullet string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(buf, "%s%s\n", bullet, escapeMarkdown(item))
	}
	buf.WriteString("\n")
}

// escapeMarkdown escapes emphasis markers that would otherwise restyle captured text
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// escapeCell keeps a value inside a single table cell
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "\n", " ")
	return escapeMarkdown(text)
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
