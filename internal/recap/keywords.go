package recap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/iksnae/activity-recap/internal"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords tokenizes text into lowercase keywords. Duplicates are kept
// because downstream stages count them.
func ExtractKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)

	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 || IsStopWord(f) {
			continue
		}
		keywords = append(keywords, f)
	}
	return keywords
}

// KeywordCount is a keyword and the number of times it occurred
type KeywordCount struct {
	Keyword string
	Count   int
}

// CountKeywords counts keywords over the title and text of every event,
// ordered by descending count. Ties keep first-occurrence order.
func CountKeywords(events []internal.ActivityEvent) []KeywordCount {
	index := make(map[string]int)
	var counts []KeywordCount

	for i := range events {
		text := events[i].Title + " " + events[i].ContentText()
		for _, kw := range ExtractKeywords(text) {
			if pos, ok := index[kw]; ok {
				counts[pos].Count++
				continue
			}
			index[kw] = len(counts)
			counts = append(counts, KeywordCount{Keyword: kw, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopKeywords returns at most limit keywords from CountKeywords
func TopKeywords(events []internal.ActivityEvent, limit int) []string {
	counts := CountKeywords(events)
	if len(counts) > limit {
		counts = counts[:limit]
	}
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		out = append(out, c.Keyword)
	}
	return out
}
