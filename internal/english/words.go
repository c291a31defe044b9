package english

// words is the lookup dictionary of common English words. The layer it
// feeds only fires on sequences the phonotactic validator already
// rejected, so entries that happen to be well-formed Vietnamese are
// harmless here.
var words = buildWords()

func buildWords() map[string]struct{} {
	list := []string{
		"about", "after", "again", "against", "all", "also", "always",
		"and", "another", "any", "are", "around", "because", "been",
		"before", "being", "between", "both", "but", "came", "can",
		"could", "did", "does", "down", "each", "even", "every", "few",
		"find", "first", "for", "found", "from", "get", "give", "going",
		"good", "got", "great", "had", "has", "have", "her", "here",
		"him", "his", "home", "house", "how", "into", "its", "just",
		"know", "last", "left", "life", "like", "little", "long", "look",
		"made", "make", "many", "may", "might", "more", "most", "much",
		"must", "never", "new", "next", "night", "not", "now", "off",
		"old", "once", "one", "only", "other", "our", "out", "over",
		"own", "part", "people", "place", "put", "right", "said", "same",
		"say", "see", "she", "should", "side", "since", "small", "some",
		"something", "sound", "still", "such", "take", "than", "that",
		"the", "their", "them", "then", "there", "these", "they",
		"thing", "think", "this", "those", "three", "through", "time",
		"together", "too", "took", "two", "under", "until", "use",
		"used", "very", "want", "water", "way", "well", "went", "were",
		"what", "when", "where", "which", "while", "who", "why", "will",
		"with", "word", "work", "world", "would", "write", "year",
		"you", "your",
	}
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
