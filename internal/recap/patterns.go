package recap

// EventPattern is one category of the static activity taxonomy
type EventPattern struct {
	Name     string
	Weight   float64
	Keywords []string
}

var patternTable = [...]EventPattern{
	{
		Name:     "learning",
		Weight:   1.2,
		Keywords: []string{"learn", "tutorial", "course", "lesson", "lecture", "study", "khan", "coursera", "udemy", "quiz"},
	},
	{
		Name:     "coding",
		Weight:   1.5,
		Keywords: []string{"code", "github", "gitlab", "commit", "function", "refactor", "implement", "pull request", "vs code", "compile"},
	},
	{
		Name:     "research",
		Weight:   1.3,
		Keywords: []string{"research", "paper", "article", "journal", "scholar", "arxiv", "analysis", "survey", "experiment"},
	},
	{
		Name:     "communication",
		Weight:   1.0,
		Keywords: []string{"slack", "email", "gmail", "message", "meeting", "chat", "zoom", "teams", "call"},
	},
	{
		Name:     "debugging",
		Weight:   1.4,
		Keywords: []string{"debug", "bug", "error", "fix", "issue", "exception", "stack trace", "crash", "stackoverflow"},
	},
	{
		Name:     "documentation",
		Weight:   1.1,
		Keywords: []string{"docs", "documentation", "readme", "wiki", "notion", "confluence", "guide", "manual"},
	},
}

// Patterns returns a copy of the taxonomy
func Patterns() []EventPattern {
	out := make([]EventPattern, len(patternTable))
	for i, p := range patternTable {
		out[i] = EventPattern{
			Name:     p.Name,
			Weight:   p.Weight,
			Keywords: append([]string(nil), p.Keywords...),
		}
	}
	return out
}
