package recap

// stopWords holds common English function words that never become keywords.
var stopWords = newWordSet(
	// articles and determiners
	"the", "a", "an", "this", "that", "these", "those", "each", "every", "some", "any",
	"all", "both", "few", "more", "most", "other", "such", "own", "same", "another",
	// pronouns
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she",
	"her", "hers", "herself", "it", "its", "itself", "they", "them", "their", "theirs",
	"themselves", "what", "which", "who", "whom", "whose",
	// auxiliary and modal verbs
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"having", "do", "does", "did", "doing", "will", "would", "shall", "should", "can",
	"could", "may", "might", "must", "ought",
	// conjunctions
	"and", "but", "or", "nor", "so", "yet", "because", "although", "though", "while",
	"if", "unless", "until", "than", "whether",
	// prepositions
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "onto", "upon", "within", "without",
	// adverbs and fillers
	"again", "further", "then", "once", "here", "there", "when", "where", "why", "how",
	"only", "very", "too", "just", "also", "not", "no", "now", "still", "even", "ever",
	"much", "many", "really", "well",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) contains(w string) bool {
	_, ok := s[w]
	return ok
}

// IsStopWord reports whether word is ignored by keyword extraction
func IsStopWord(word string) bool {
	return stopWords.contains(word)
}
