package recap

import (
	"fmt"
	"time"

	"github.com/iksnae/activity-recap/internal"
)

var baseTime = time.Date(2026, time.March, 14, 9, 5, 0, 0, time.UTC)

func newEvent(t internal.EventType, source, title, text string) internal.ActivityEvent {
	e := internal.ActivityEvent{
		Timestamp: baseTime,
		Type:      t,
		Source:    source,
		Title:     title,
	}
	if text != "" {
		e.Content = &internal.EventContent{Text: text}
	}
	return e
}

// spacedEvents returns n events one minute apart from distinct sources
func spacedEvents(n int, t internal.EventType) []internal.ActivityEvent {
	events := make([]internal.ActivityEvent, n)
	for i := range events {
		events[i] = newEvent(t, fmt.Sprintf("Site %d", i), fmt.Sprintf("Page %d overview", i), "")
		events[i].Timestamp = baseTime.Add(time.Duration(i) * time.Minute)
	}
	return events
}
