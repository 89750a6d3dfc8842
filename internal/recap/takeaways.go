package recap

import (
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

const (
	maxTakeaways       = 6
	takeawayCandidates = 8
	minTakeawayChars   = 10
	maxTakeawayChars   = 150
)

func synthesizeTakeaways(events []internal.ActivityEvent, profile internal.ProfileType) []string {
	takeaways := make([]string, 0, maxTakeaways)

	for _, ranked := range topRanked(events, takeawayCandidates) {
		if s, ok := firstSentence(ranked.event.ContentText()); ok {
			takeaways = append(takeaways, s)
		}
	}
	takeaways = append(takeaways, profileFor(profile).takeaways...)

	return capList(takeaways, maxTakeaways)
}

// firstSentence returns the text up to the first '.', '!' or '?' when its
// trimmed length is within the takeaway bounds.
func firstSentence(text string) (string, bool) {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	n := internal.CharCount(text)
	if n < minTakeawayChars || n >= maxTakeawayChars {
		return "", false
	}
	return text, true
}
