package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/activity-recap/internal"
)

// JSONExporter exports recaps in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a recap to JSON format
func (e *JSONExporter) Export(recap *internal.GeneratedContent, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(recap)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
