package recap

import (
	"fmt"
	"math"
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

const (
	maxInsights          = 5
	dominantSourceShare  = 0.3
	githubInsight        = "Active code collaboration on GitHub detected"
	minActionsForInsight = 2
	minTabsForInsight    = 3
	minSourcesForInsight = 3
)

func synthesizeInsights(events []internal.ActivityEvent, profile internal.ProfileType) []string {
	insights := make([]string, 0, maxInsights)
	groups := GroupBySource(events)

	if keywords := TopKeywords(events, 5); len(keywords) > 0 {
		insights = append(insights, "Key themes: "+strings.Join(keywords, ", "))
	}

	if n := countType(events, internal.EventAction); n > minActionsForInsight {
		insights = append(insights, fmt.Sprintf("Performed %d actions, showing hands-on engagement", n))
	}

	if n := countType(events, internal.EventNote); n > 0 {
		insights = append(insights, fmt.Sprintf("Captured %d %s for later reference", n, plural(n, "note", "notes")))
	}

	key, size := groups.Largest()
	if name := strings.TrimSpace(groups.DisplayName(key)); name != "" && float64(size) > float64(len(events))*dominantSourceShare {
		pct := int(math.Round(float64(size) / float64(len(events)) * 100))
		insights = append(insights, fmt.Sprintf("%d%% of activity focused on %s", pct, name))
	}

	switch profile {
	case internal.ProfileDeveloper:
		if anySourceContains(events, "github") {
			insights = append(insights, githubInsight)
		}
	case internal.ProfileStudent:
		if n := countType(events, internal.EventTab); n > minTabsForInsight {
			insights = append(insights, fmt.Sprintf("Explored %d different learning resources", n))
		}
	case internal.ProfileResearcher:
		if groups.Len() > minSourcesForInsight {
			insights = append(insights, fmt.Sprintf("Consulted %d distinct sources for a broad perspective", groups.Len()))
		}
	}

	return capList(insights, maxInsights)
}

func countType(events []internal.ActivityEvent, t internal.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func anySourceContains(events []internal.ActivityEvent, needles ...string) bool {
	for _, e := range events {
		src := e.NormalizedSource()
		for _, n := range needles {
			if strings.Contains(src, n) {
				return true
			}
		}
	}
	return false
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
