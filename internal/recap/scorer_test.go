package recap

import (
	"strings"
	"testing"

	"github.com/iksnae/activity-recap/internal"
	"github.com/stretchr/testify/assert"
)

func TestScoreEvent(t *testing.T) {
	longNote := newEvent(internal.EventNote, "Local", "Scratch", strings.Repeat("x", 120))

	codeOnly := newEvent(internal.EventMessage, "Local", "Snippet", "")
	codeOnly.Content = &internal.EventContent{Code: "x := 1"}

	summaryOnly := newEvent(internal.EventTab, "Local", "Reading", "")
	summaryOnly.Content = &internal.EventContent{Summary: "short summary"}

	tests := []struct {
		name  string
		event internal.ActivityEvent
		want  float64
	}{
		{name: "bare tab", event: newEvent(internal.EventTab, "Firefox", "Untitled", ""), want: 1.0},
		{name: "bare message", event: newEvent(internal.EventMessage, "Local", "Ping", ""), want: 1.0},
		{name: "long note", event: longNote, want: 1.0 + 0.5 + 0.3 + 0.6},
		{name: "code counts as content", event: codeOnly, want: 1.5},
		{name: "summary counts as content", event: summaryOnly, want: 1.5},
		{name: "several patterns add up", event: newEvent(internal.EventApp, "Slack", "Debug API tutorial", ""), want: 1.0 + 0.3 + 1.2*0.2 + 1.0*0.2 + 1.4*0.2},
		{
			name:  "developer fix on github",
			event: newEvent(internal.EventAction, "GitHub", "Fix auth bug", "Resolved issue where users were logged out unexpectedly"),
			want:  1.0 + 0.5 + 0.4 + 1.5*0.2 + 1.4*0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreEvent(tt.event), 1e-9)
		})
	}
}

func TestScoreEvent_NilContentIsSafe(t *testing.T) {
	e := internal.ActivityEvent{Type: internal.EventAction, Timestamp: baseTime}
	assert.InDelta(t, 1.4, ScoreEvent(e), 1e-9)
}

func TestImportanceOf(t *testing.T) {
	assert.Equal(t, internal.ImportanceHigh, ImportanceOf(2.01))
	assert.Equal(t, internal.ImportanceMedium, ImportanceOf(2.0))
	assert.Equal(t, internal.ImportanceMedium, ImportanceOf(1.6))
	assert.Equal(t, internal.ImportanceLow, ImportanceOf(1.5))
	assert.Equal(t, internal.ImportanceLow, ImportanceOf(1.0))
}

func TestRankEvents_StableOnTies(t *testing.T) {
	events := []internal.ActivityEvent{
		newEvent(internal.EventTab, "Local", "first", ""),
		newEvent(internal.EventNote, "Local", "note", ""),
		newEvent(internal.EventTab, "Local", "second", ""),
		newEvent(internal.EventTab, "Local", "third", ""),
	}

	ranked := rankEvents(events)
	titles := make([]string, len(ranked))
	for i, r := range ranked {
		titles[i] = r.event.Title
	}
	assert.Equal(t, []string{"note", "first", "second", "third"}, titles)
	assert.Equal(t, "first", events[0].Title, "input must not be reordered")
}

func TestPatterns_ReturnsCopy(t *testing.T) {
	p := Patterns()
	assert.Len(t, p, 6)
	p[0].Weight = 99
	p[0].Keywords[0] = "mutated"

	fresh := Patterns()
	assert.Equal(t, 1.2, fresh[0].Weight)
	assert.Equal(t, "learn", fresh[0].Keywords[0])
}
