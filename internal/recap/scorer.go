package recap

import (
	"sort"
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

const (
	baseScore        = 1.0
	contentBonus     = 0.5
	longContentBonus = 0.3
	longContentChars = 100
	patternFactor    = 0.2
)

var typeBonus = map[internal.EventType]float64{
	internal.EventAction: 0.4,
	internal.EventNote:   0.6,
	internal.EventApp:    0.3,
}

// ScoreEvent assigns an importance score to a single event
func ScoreEvent(e internal.ActivityEvent) float64 {
	score := baseScore

	length := internal.CharCount(e.ContentText()) + internal.CharCount(e.CodeText())
	if length > 0 {
		score += contentBonus
		if length > longContentChars {
			score += longContentBonus
		}
	}

	score += typeBonus[e.Type]

	haystack := strings.ToLower(e.Title + " " + e.ContentText() + " " + e.Source)
	for i := range patternTable {
		if matchesAny(haystack, patternTable[i].Keywords) {
			score += patternTable[i].Weight * patternFactor
		}
	}

	return score
}

func matchesAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// ImportanceOf buckets a score for the timeline
func ImportanceOf(score float64) internal.Importance {
	switch {
	case score > 2:
		return internal.ImportanceHigh
	case score > 1.5:
		return internal.ImportanceMedium
	default:
		return internal.ImportanceLow
	}
}

type scoredEvent struct {
	event internal.ActivityEvent
	score float64
}

// rankEvents returns a copy of events ordered by score, highest first.
// Equal scores keep their original order.
func rankEvents(events []internal.ActivityEvent) []scoredEvent {
	ranked := make([]scoredEvent, len(events))
	for i, e := range events {
		ranked[i] = scoredEvent{event: e, score: ScoreEvent(e)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

func topRanked(events []internal.ActivityEvent, n int) []scoredEvent {
	ranked := rankEvents(events)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
