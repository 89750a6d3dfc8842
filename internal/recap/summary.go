package recap

import (
	"fmt"
	"math"
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

const fallbackTopic = "various topics"

func synthesizeSummary(events []internal.ActivityEvent, profile internal.ProfileType) string {
	top := topRanked(events, 5)
	groups := GroupBySource(events)
	minutes := durationMinutes(events)

	focus := fallbackTopic
	if len(top) > 0 && top[0].event.Title != "" {
		focus = top[0].event.Title
	}

	return fmt.Sprintf(
		`This %s captured %d %s across %d %s%s over %d %s, spanning %s events, with "%s" as the main focus.`,
		profileFor(profile).noun,
		len(events), plural(len(events), "activity", "activities"),
		groups.Len(), plural(groups.Len(), "source", "sources"),
		sourceList(groups.DisplayNames(4)),
		minutes, plural(minutes, "minute", "minutes"),
		strings.Join(eventTypesPresent(events), ", "),
		focus,
	)
}

// sourceList renders names as a parenthesized suffix, or nothing when there are none
func sourceList(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return " (" + strings.Join(names, ", ") + ")"
}

// durationMinutes measures from the earliest to the latest timestamp so that
// out-of-order input still yields a non-negative duration.
func durationMinutes(events []internal.ActivityEvent) int {
	if len(events) < 2 {
		return 0
	}
	first, last := events[0].Timestamp, events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}
	return int(math.Round(last.Sub(first).Minutes()))
}

func eventTypesPresent(events []internal.ActivityEvent) []string {
	seen := make(map[internal.EventType]bool)
	var types []string
	for _, e := range events {
		if !seen[e.Type] {
			seen[e.Type] = true
			types = append(types, string(e.Type))
		}
	}
	return types
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
