// Package syllable analyzes the composition buffer's structure: where the
// onset ends, which vowels form the nucleus, and which vowel should carry
// the tone mark.
package syllable

import (
	"vikey/internal/buffer"
	"vikey/internal/keys"
)

// NucleusRange returns the [start, end) index range of the tone-bearing
// vowel run. The u of a qu- onset and the i of a gi- onset belong to the
// onset, not the nucleus, unless stripping them would leave no vowel.
func NucleusRange(chars []buffer.Char) (int, int) {
	start, end := -1, -1
	for i, c := range chars {
		if keys.IsVowel(c.Key) {
			if start == -1 {
				start = i
			}
			end = i + 1
		} else if start != -1 {
			break
		}
	}
	if start == -1 {
		return -1, -1
	}
	if end-start > 1 && start > 0 {
		prev := chars[start-1].Key
		first := chars[start].Key
		if (prev == keys.Q && first == keys.U) || (prev == keys.G && first == keys.I) {
			start++
		}
	}
	return start, end
}

// Closed reports whether a consonant follows the nucleus.
func Closed(chars []buffer.Char) bool {
	_, end := NucleusRange(chars)
	return end != -1 && end < len(chars)
}

// ToneTarget picks the buffer index of the vowel that should carry the
// tone mark, or -1 when the buffer holds no vowel.
//
// A vowel with a shape diacritic wins outright; with two of them (the ươ
// compound) the later one wins. Otherwise a closed syllable marks the last
// nucleus vowel and an open one marks by length: single vowels themselves,
// pairs on the first vowel, triples in the middle. Modern style moves the
// mark of open oa, oe and uy onto the second vowel.
func ToneTarget(chars []buffer.Char, modern bool) int {
	start, end := NucleusRange(chars)
	if start == -1 {
		return -1
	}
	for i := end - 1; i >= start; i-- {
		if chars[i].Mod != buffer.ModNone {
			return i
		}
	}
	if end < len(chars) {
		return end - 1
	}
	switch end - start {
	case 1:
		return start
	case 2:
		if modern && openPairSecond(chars[start].Key, chars[start+1].Key) {
			return start + 1
		}
		return start
	default:
		return start + 1
	}
}

func openPairSecond(a, b uint16) bool {
	switch {
	case a == keys.O && b == keys.A:
		return true
	case a == keys.O && b == keys.E:
		return true
	case a == keys.U && b == keys.Y:
		return true
	}
	return false
}

// OnsetQ reports whether the syllable opens with a q (always qu-). The
// horn compound never forms after it.
func OnsetQ(chars []buffer.Char) bool {
	return len(chars) > 0 && chars[0].Key == keys.Q
}
