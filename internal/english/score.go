package english

import (
	"vikey/internal/keys"
	"vikey/internal/phonotactic"
)

// Layer weights. A word's score is the strongest evidence found, not a
// sum; independent weak signals must not outvote one strong one.
const (
	weightInitial      = 100
	weightDictionary   = 100
	weightOnsetCluster = 98
	weightDoubleCons   = 95
	weightPrefix       = 95
	weightCoda         = 91
	weightSuffix       = 90
	weightVowelPattern = 85
	weightBigram       = 80

	diacriticsPenalty = 70
)

var onsetClusters = []string{
	"spr", "str", "scr", "spl", "shr", "thr", "chr", "squ",
	"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr",
	"pl", "pr", "sc", "sh", "sk", "sl", "sm", "sn", "sp",
	"st", "sw", "tw", "wh", "wr",
}

var prefixes = []string{"ex", "dis", "sub", "pre", "pro", "inter", "trans", "under", "over", "out"}

var suffixes = []string{"tion", "ment", "ness", "ing", "est", "ful", "less", "ly", "er", "ed"}

var vowelPatterns = []string{"ea", "ei", "ou"}

// Score rates how strongly a base-letter sequence looks like English.
// rawFirst is the first literal keystroke of the word, which may differ
// from the first buffer letter when Telex consumed it (standalone w).
func Score(seq []uint16, rawFirst uint16) int {
	if len(seq) == 0 {
		return 0
	}
	word := lower(seq)
	best := 0
	bump := func(w int) {
		if w > best {
			best = w
		}
	}

	if phonotactic.InitialInvalid(rawFirst) || phonotactic.InitialInvalid(seq[0]) {
		bump(weightInitial)
	}
	for _, c := range onsetClusters {
		if hasPrefix(word, c) {
			bump(weightOnsetCluster)
			break
		}
	}
	for i := 1; i < len(word); i++ {
		if word[i] == word[i-1] && isConsonantByte(word[i]) && word[i] != 'd' {
			// dd is the Telex stroke revert, never English evidence.
			bump(weightDoubleCons)
			break
		}
	}
	for _, p := range prefixes {
		if len(word) > len(p) && hasPrefix(word, p) {
			bump(weightPrefix)
			break
		}
	}
	if len(seq) > 1 && hasVowel(seq) {
		last := seq[len(seq)-1]
		if keys.IsConsonant(last) && phonotactic.CodaInvalid(last) {
			bump(weightCoda)
		}
	}
	for _, s := range suffixes {
		if len(word) > len(s)+1 && hasSuffix(word, s) {
			bump(weightSuffix)
			break
		}
	}
	for _, p := range vowelPatterns {
		if contains(word, p) {
			bump(weightVowelPattern)
			break
		}
	}
	valid := phonotactic.Valid(seq)
	if !valid {
		bump(weightBigram)
		if _, hit := words[string(word)]; hit {
			bump(weightDictionary)
		}
	}
	return best
}

func lower(seq []uint16) []byte {
	out := make([]byte, 0, len(seq))
	for _, k := range seq {
		if r := keys.ToRune(k, false); r != 0 {
			out = append(out, byte(r))
		}
	}
	return out
}

func hasVowel(seq []uint16) bool {
	for _, k := range seq {
		if keys.IsVowel(k) {
			return true
		}
	}
	return false
}

func isConsonantByte(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return false
	}
	return b >= 'a' && b <= 'z'
}

func hasPrefix(w []byte, p string) bool {
	return len(w) >= len(p) && string(w[:len(p)]) == p
}

func hasSuffix(w []byte, s string) bool {
	return len(w) >= len(s) && string(w[len(w)-len(s):]) == s
}

func contains(w []byte, sub string) bool {
	for i := 0; i+len(sub) <= len(w); i++ {
		if string(w[i:i+len(sub)]) == sub {
			return true
		}
	}
	return false
}
