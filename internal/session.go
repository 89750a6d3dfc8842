package internal

import "time"

// RecordingSession is an ordered capture of events tagged with a profile
type RecordingSession struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	ProfileType ProfileType     `json:"profileType" yaml:"profileType"`
	StartTime   time.Time       `json:"startTime" yaml:"startTime"`
	CreatedAt   time.Time       `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Events      []ActivityEvent `json:"events" yaml:"events"`
}

// Importance buckets an event's score for the timeline
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// TimelineEntry is one row of a recap timeline
type TimelineEntry struct {
	Time       string     `json:"time" yaml:"time"`
	Event      string     `json:"event" yaml:"event"`
	Importance Importance `json:"importance" yaml:"importance"`
}

// GeneratedContent is the recap produced for a session
type GeneratedContent struct {
	Title         string          `json:"title" yaml:"title"`
	Summary       string          `json:"summary" yaml:"summary"`
	Insights      []string        `json:"insights" yaml:"insights"`
	KeyTakeaways  []string        `json:"keyTakeaways" yaml:"keyTakeaways"`
	ActionItems   []string        `json:"actionItems" yaml:"actionItems"`
	RelatedTopics []string        `json:"relatedTopics" yaml:"relatedTopics"`
	Timeline      []TimelineEntry `json:"timeline" yaml:"timeline"`
	Tags          []string        `json:"tags" yaml:"tags"`
	Confidence    int             `json:"confidence" yaml:"confidence"`
}
