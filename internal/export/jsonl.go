package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/activity-recap/internal"
)

// JSONLExporter exports a recap timeline in JSONL format (one entry per line)
type JSONLExporter struct{}

// Export writes each timeline entry as a single JSON line
func (e *JSONLExporter) Export(recap *internal.GeneratedContent, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, entry := range recap.Timeline {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to encode timeline entry: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
