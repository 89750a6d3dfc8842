package recap

import (
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

// TopicGroups partitions events by lowercased source
type TopicGroups struct {
	keys    []string
	groups  map[string][]internal.ActivityEvent
	display map[string]string
}

// GroupBySource groups events by normalized source, keeping relative order
// inside each group and first-occurrence order across groups.
func GroupBySource(events []internal.ActivityEvent) *TopicGroups {
	tg := &TopicGroups{
		groups:  make(map[string][]internal.ActivityEvent),
		display: make(map[string]string),
	}
	for _, e := range events {
		key := e.NormalizedSource()
		if _, ok := tg.groups[key]; !ok {
			tg.keys = append(tg.keys, key)
			tg.display[key] = e.Source
		}
		tg.groups[key] = append(tg.groups[key], e)
	}
	return tg
}

// Len returns the number of distinct sources
func (tg *TopicGroups) Len() int {
	return len(tg.keys)
}

// Keys returns group keys in first-occurrence order
func (tg *TopicGroups) Keys() []string {
	return append([]string(nil), tg.keys...)
}

// Events returns the events of one group
func (tg *TopicGroups) Events(key string) []internal.ActivityEvent {
	return tg.groups[key]
}

// DisplayName returns the source as first written by the recorder
func (tg *TopicGroups) DisplayName(key string) string {
	return tg.display[key]
}

// DisplayNames returns up to n non-blank display names in first-occurrence order
func (tg *TopicGroups) DisplayNames(n int) []string {
	names := make([]string, 0, n)
	for _, k := range tg.keys {
		if len(names) == n {
			break
		}
		if name := strings.TrimSpace(tg.display[k]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Largest returns the key and size of the biggest group; the earliest group wins ties
func (tg *TopicGroups) Largest() (string, int) {
	var best string
	size := 0
	for _, k := range tg.keys {
		if n := len(tg.groups[k]); n > size {
			best, size = k, n
		}
	}
	return best, size
}
