package internal

import (
	"fmt"
	"time"
)

// CreateTestEvent creates an event without a content payload
func CreateTestEvent(ts time.Time, eventType EventType, source, title string) ActivityEvent {
	return ActivityEvent{
		Timestamp: ts,
		Type:      eventType,
		Source:    source,
		Title:     title,
	}
}

// CreateTestSession creates a session with a few developer events
func CreateTestSession(id string) *RecordingSession {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return &RecordingSession{
		ID:          id,
		Name:        "Test Session",
		ProfileType: ProfileDeveloper,
		StartTime:   start,
		CreatedAt:   start.Add(time.Hour),
		Events: []ActivityEvent{
			{
				Timestamp: start,
				Type:      EventTab,
				Source:    "GitHub",
				Title:     "Review pull request",
				Content:   &EventContent{Text: "Refactor the storage layer to use transactions."},
			},
			{
				Timestamp: start.Add(5 * time.Minute),
				Type:      EventAction,
				Source:    "VS Code",
				Title:     "Commit changes",
				Content:   &EventContent{Code: "tx, err := db.BeginTx(ctx, nil)"},
			},
			{
				Timestamp: start.Add(12 * time.Minute),
				Type:      EventNote,
				Source:    "Notes",
				Title:     "Remember to update the changelog",
				Content: &EventContent{
					Summary:    "Changelog entry for the storage refactor",
					Highlights: []string{"transactions wrap every save"},
				},
			},
		},
	}
}

// CreateTestSessionWithEvents creates a session around the given events
func CreateTestSessionWithEvents(id string, profile ProfileType, events []ActivityEvent) *RecordingSession {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if len(events) > 0 {
		start = events[0].Timestamp
	}
	return &RecordingSession{
		ID:          id,
		Name:        fmt.Sprintf("Session %s", id),
		ProfileType: profile,
		StartTime:   start,
		CreatedAt:   start,
		Events:      events,
	}
}
