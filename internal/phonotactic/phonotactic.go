// Package phonotactic decides whether a key sequence can still become a
// Vietnamese syllable. The engine consults it before applying transforms
// and the English guard consults it for scoring evidence.
//
// Validation runs in two stages: a bigram walk over adjacent letters,
// then structural checks on the vowel nucleus. Both operate on base
// letters only; diacritics play no part here.
package phonotactic

import "vikey/internal/keys"

// ValidSequence runs the bigram stage: every key must be a letter, the
// first must be able to open a syllable, every adjacent pair must be a
// known bigram, and the last letter must be able to close one.
func ValidSequence(seq []uint16) bool {
	if len(seq) == 0 {
		return true
	}
	hasVowel := false
	for _, k := range seq {
		if !keys.IsLetter(k) {
			return false
		}
		if keys.IsVowel(k) {
			hasVowel = true
		}
	}
	if InitialInvalid(seq[0]) {
		return false
	}
	for i := 1; i < len(seq); i++ {
		if !Follows(seq[i-1], seq[i]) {
			return false
		}
	}
	// The coda rule only bites once a nucleus exists; a bare onset like
	// "th" is still a word in progress.
	last := seq[len(seq)-1]
	if hasVowel && keys.IsConsonant(last) && CodaInvalid(last) {
		return false
	}
	return true
}

// ValidNucleus runs the structural stage: a syllable has at most one
// contiguous vowel run, and that run must be a whitelisted nucleus.
func ValidNucleus(seq []uint16) bool {
	start, end := -1, -1
	for i, k := range seq {
		if keys.IsVowel(k) {
			if start == -1 {
				start = i
			} else if end != -1 {
				// Second vowel run: two nuclei in one word.
				return false
			}
		} else if start != -1 && end == -1 {
			end = i
		}
	}
	if start == -1 {
		return true
	}
	if end == -1 {
		end = len(seq)
	}
	run := make([]byte, 0, 4)
	for _, k := range seq[start:end] {
		run = append(run, letterByte(k))
	}
	_, ok := nuclei[string(run)]
	return ok
}

// Valid reports whether the sequence passes both stages.
func Valid(seq []uint16) bool {
	return ValidSequence(seq) && ValidNucleus(seq)
}

func letterByte(k uint16) byte {
	r := keys.ToRune(k, false)
	if r == 0 {
		return '?'
	}
	return byte(r)
}
