package recap

import "github.com/iksnae/activity-recap/internal"

const (
	maxRelatedTopics = 4
	relatedKeywords  = 10
)

type topicTrigger struct {
	words      [2]string
	suggestion string
}

var topicTriggers = [...]topicTrigger{
	{words: [2]string{"react", "component"}, suggestion: "React component patterns and best practices"},
	{words: [2]string{"api", "fetch"}, suggestion: "API design and data fetching strategies"},
	{words: [2]string{"test", "testing"}, suggestion: "Testing strategies and test automation"},
	{words: [2]string{"data", "analysis"}, suggestion: "Data analysis techniques and visualization"},
	{words: [2]string{"learn", "study"}, suggestion: "Effective learning and study techniques"},
}

var genericTopics = [...]string{
	"Productivity workflows and time management",
	"Knowledge management and note-taking systems",
}

func synthesizeRelatedTopics(events []internal.ActivityEvent) []string {
	top := newWordSet(TopKeywords(events, relatedKeywords)...)

	topics := make([]string, 0, maxRelatedTopics)
	for _, t := range topicTriggers {
		if top.contains(t.words[0]) || top.contains(t.words[1]) {
			topics = append(topics, t.suggestion)
		}
	}
	topics = append(topics, genericTopics[:]...)

	return capList(topics, maxRelatedTopics)
}
