package internal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// EventType classifies a captured activity
type EventType string

const (
	EventTab     EventType = "tab"
	EventAction  EventType = "action"
	EventNote    EventType = "note"
	EventApp     EventType = "app"
	EventMessage EventType = "message"
)

// EventTypes lists every known event type in declaration order
var EventTypes = []EventType{EventTab, EventAction, EventNote, EventApp, EventMessage}

// Valid reports whether t is a known event type
func (t EventType) Valid() bool {
	switch t {
	case EventTab, EventAction, EventNote, EventApp, EventMessage:
		return true
	}
	return false
}

// ProfileType selects the wording and canned content used for a recap
type ProfileType string

const (
	ProfileStudent    ProfileType = "student"
	ProfileDeveloper  ProfileType = "developer"
	ProfileSupport    ProfileType = "support"
	ProfileResearcher ProfileType = "researcher"
	ProfileCustom     ProfileType = "custom"
)

// ProfileTypes lists every known profile in declaration order
var ProfileTypes = []ProfileType{ProfileStudent, ProfileDeveloper, ProfileSupport, ProfileResearcher, ProfileCustom}

// Valid reports whether p is a known profile
func (p ProfileType) Valid() bool {
	switch p {
	case ProfileStudent, ProfileDeveloper, ProfileSupport, ProfileResearcher, ProfileCustom:
		return true
	}
	return false
}

// ParseProfileType parses a user supplied profile name
func ParseProfileType(s string) (ProfileType, error) {
	p := ProfileType(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", &ValidationError{Field: "profileType", Index: -1, Reason: fmt.Sprintf("unknown profile %q", s)}
	}
	return p, nil
}

// EventContent is the optional structured payload of an event
type EventContent struct {
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Code       string   `json:"code,omitempty" yaml:"code,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// ActivityEvent is one captured occurrence
type ActivityEvent struct {
	Timestamp   time.Time     `json:"timestamp" yaml:"timestamp"`
	Type        EventType     `json:"type" yaml:"type"`
	Source      string        `json:"source" yaml:"source"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Content     *EventContent `json:"content,omitempty" yaml:"content,omitempty"`
}

// ContentText returns the text payload, falling back to the summary
func (e *ActivityEvent) ContentText() string {
	if e.Content == nil {
		return ""
	}
	if e.Content.Text != "" {
		return e.Content.Text
	}
	return e.Content.Summary
}

// RawText returns only the text payload, without the summary fallback
func (e *ActivityEvent) RawText() string {
	if e.Content == nil {
		return ""
	}
	return e.Content.Text
}

// CodeText returns the code payload
func (e *ActivityEvent) CodeText() string {
	if e.Content == nil {
		return ""
	}
	return e.Content.Code
}

// HasCode reports whether the event carries a code snippet
func (e *ActivityEvent) HasCode() bool {
	return e.CodeText() != ""
}

// Highlights returns the highlight list, never nil
func (e *ActivityEvent) Highlights() []string {
	if e.Content == nil || e.Content.Highlights == nil {
		return []string{}
	}
	return e.Content.Highlights
}

// NormalizedSource returns the source used for grouping and comparisons
func (e *ActivityEvent) NormalizedSource() string {
	return strings.ToLower(e.Source)
}

// Validate checks the fields the engine relies on
func (e *ActivityEvent) Validate() error {
	if e.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Index: -1, Reason: "missing timestamp"}
	}
	if !e.Type.Valid() {
		return &ValidationError{Field: "type", Index: -1, Reason: fmt.Sprintf("unknown event type %q", e.Type)}
	}
	return nil
}

// ValidateEvents validates every event and the profile, reporting the first problem
func ValidateEvents(events []ActivityEvent, profile ProfileType) error {
	if !profile.Valid() {
		return &ValidationError{Field: "profileType", Index: -1, Reason: fmt.Sprintf("unknown profile %q", profile)}
	}
	for i := range events {
		if err := events[i].Validate(); err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Index = i
			}
			return err
		}
	}
	return nil
}

// CharCount counts characters rather than bytes
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
