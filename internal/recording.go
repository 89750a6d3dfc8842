package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawRecording is a recorder export file as written by the capture extension
type RawRecording struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	ProfileType string      `json:"profileType,omitempty" yaml:"profileType,omitempty"`
	StartTime   interface{} `json:"startTime,omitempty" yaml:"startTime,omitempty"` // epoch ms or RFC 3339
	Events      []RawEvent  `json:"events" yaml:"events"`
}

// RawEvent is an event before normalization
type RawEvent struct {
	Timestamp   interface{}   `json:"timestamp" yaml:"timestamp"` // epoch ms or RFC 3339
	Type        string        `json:"type" yaml:"type"`
	Source      string        `json:"source" yaml:"source"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Content     *EventContent `json:"content,omitempty" yaml:"content,omitempty"`
}

// ParseRecordingFile reads a recorder export from disk. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func ParseRecordingFile(path string) (*RawRecording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseRecordingYAML(data, path)
	default:
		return ParseRecordingJSON(data, path)
	}
}

// ParseRecordingJSON decodes a recording object or a bare array of events
func ParseRecordingJSON(data []byte, key string) (*RawRecording, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Source: "json", Key: key, Err: fmt.Errorf("empty document")}
	}

	var rec RawRecording
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rec.Events); err != nil {
			return nil, &ParseError{Source: "json", Key: key, Err: err}
		}
		return &rec, nil
	}

	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, &ParseError{Source: "json", Key: key, Err: err}
	}
	return &rec, nil
}

// ParseRecordingYAML decodes a recording object or a bare sequence of events
func ParseRecordingYAML(data []byte, key string) (*RawRecording, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &ParseError{Source: "yaml", Key: key, Err: err}
	}
	if len(node.Content) == 0 {
		return nil, &ParseError{Source: "yaml", Key: key, Err: fmt.Errorf("empty document")}
	}

	var rec RawRecording
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		if err := root.Decode(&rec.Events); err != nil {
			return nil, &ParseError{Source: "yaml", Key: key, Err: err}
		}
		return &rec, nil
	}

	if err := root.Decode(&rec); err != nil {
		return nil, &ParseError{Source: "yaml", Key: key, Err: err}
	}
	return &rec, nil
}
