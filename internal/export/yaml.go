package export

import (
	"io"

	"github.com/iksnae/activity-recap/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports recaps in YAML format
type YAMLExporter struct{}

// Export exports a recap to YAML format
func (e *YAMLExporter) Export(recap *internal.GeneratedContent, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(recap)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
