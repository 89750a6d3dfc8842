// Package recap turns a session's activity events into a GeneratedContent
// bundle. The generation functions are pure: no I/O, no shared mutable state,
// and identical input always produces identical output. CachedGenerator
// layers the on-disk recap cache on top.
package recap

import (
	"fmt"
	"math"
	"time"

	"github.com/iksnae/activity-recap/internal"
)

const (
	maxTimeline = 10
	maxTags     = 8

	// TimelineTimeLayout formats timeline entries
	TimelineTimeLayout = "3:04:05 PM"
	// TitleDateLayout formats the session date in recap titles
	TitleDateLayout = "Jan 2, 2006"

	// EmptyTitle and EmptySummary describe a session without events
	EmptyTitle   = "No Activity Captured"
	EmptySummary = "No activities were captured during this session. Start a recording to build a recap."
)

// Generate builds the recap for events recorded under profile. The session
// date is taken from the earliest event.
func Generate(events []internal.ActivityEvent, profile internal.ProfileType) (*internal.GeneratedContent, error) {
	return generate(events, profile, time.Time{})
}

// GenerateSession builds the recap for a stored session, dating it by the
// session start time when one is recorded.
func GenerateSession(session *internal.RecordingSession) (*internal.GeneratedContent, error) {
	if session == nil {
		return nil, &internal.ValidationError{Field: "session", Index: -1, Reason: "session is nil"}
	}
	return generate(session.Events, session.ProfileType, session.StartTime)
}

func generate(events []internal.ActivityEvent, profile internal.ProfileType, start time.Time) (*internal.GeneratedContent, error) {
	if err := internal.ValidateEvents(events, profile); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return emptyContent(), nil
	}
	if start.IsZero() {
		start = earliest(events)
	}

	content := &internal.GeneratedContent{
		Title:         buildTitle(events, profile, start),
		Summary:       synthesizeSummary(events, profile),
		Insights:      synthesizeInsights(events, profile),
		KeyTakeaways:  synthesizeTakeaways(events, profile),
		ActionItems:   synthesizeActionItems(events, profile),
		RelatedTopics: synthesizeRelatedTopics(events),
		Timeline:      buildTimeline(events),
		Tags:          TopKeywords(events, maxTags),
		Confidence:    Confidence(events),
	}

	internal.LogDebug("Generated %s recap from %d events (confidence %d)", profile, len(events), content.Confidence)
	return content, nil
}

func emptyContent() *internal.GeneratedContent {
	return &internal.GeneratedContent{
		Title:         EmptyTitle,
		Summary:       EmptySummary,
		Insights:      []string{},
		KeyTakeaways:  []string{},
		ActionItems:   []string{ActionStartCapturing},
		RelatedTopics: []string{},
		Timeline:      []internal.TimelineEntry{},
		Tags:          []string{},
		Confidence:    0,
	}
}

// Confidence estimates recap quality from volume, content richness and
// source diversity, clamped to [0, 100].
func Confidence(events []internal.ActivityEvent) int {
	if len(events) == 0 {
		return 0
	}
	total := 0
	for i := range events {
		total += internal.CharCount(events[i].RawText()) + internal.CharCount(events[i].CodeText())
	}
	avg := float64(total) / float64(len(events))
	sources := GroupBySource(events).Len()

	raw := math.Round(float64(len(events))*3 + avg*0.1 + float64(sources)*10)
	return int(math.Max(0, math.Min(100, raw)))
}

func buildTimeline(events []internal.ActivityEvent) []internal.TimelineEntry {
	tail := events
	if len(tail) > maxTimeline {
		tail = tail[len(tail)-maxTimeline:]
	}
	timeline := make([]internal.TimelineEntry, 0, len(tail))
	for _, e := range tail {
		timeline = append(timeline, internal.TimelineEntry{
			Time:       e.Timestamp.Format(TimelineTimeLayout),
			Event:      e.Title,
			Importance: ImportanceOf(ScoreEvent(e)),
		})
	}
	return timeline
}

func buildTitle(events []internal.ActivityEvent, profile internal.ProfileType, start time.Time) string {
	sources := GroupBySource(events).DisplayNames(2)
	label := profileFor(profile).label
	date := start.Format(TitleDateLayout)

	switch len(sources) {
	case 0:
		return fmt.Sprintf("%s - %s", label, date)
	case 1:
		return fmt.Sprintf("%s: %s - %s", label, sources[0], date)
	default:
		return fmt.Sprintf("%s: %s & %s - %s", label, sources[0], sources[1], date)
	}
}

func earliest(events []internal.ActivityEvent) time.Time {
	t := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.Before(t) {
			t = e.Timestamp
		}
	}
	return t
}
