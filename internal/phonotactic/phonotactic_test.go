package phonotactic

import (
	"testing"

	"vikey/internal/keys"
)

func seq(t *testing.T, word string) []uint16 {
	t.Helper()
	out := make([]uint16, 0, len(word))
	for i := 0; i < len(word); i++ {
		k, ok := keys.FromASCII(word[i])
		if !ok {
			t.Fatalf("no keycode for %q", word[i])
		}
		out = append(out, k)
	}
	return out
}

func TestValidWords(t *testing.T) {
	for _, w := range []string{
		"", "a", "an", "anh", "ach", "bao", "chuong", "duong",
		"gi", "gio", "khuya", "khuyu", "nghieng", "nguyen", "ngoeo",
		"quan", "quai", "thuong", "tieng", "tuoi", "viet", "xoay", "yeu",
		"th", "ng", "tr", "qu",
	} {
		if !Valid(seq(t, w)) {
			t.Errorf("%q should be valid", w)
		}
	}
}

func TestInvalidWords(t *testing.T) {
	for _, w := range []string{
		"fan",  // f never opens a syllable
		"zip",  // z never opens a syllable
		"bk",   // b-k is no bigram
		"dataa", // second vowel run
		"club", // b never closes a syllable
		"its",  // s never closes a syllable
		"text", // x never closes a syllable
		"aeo",  // no such nucleus
	} {
		if Valid(seq(t, w)) {
			t.Errorf("%q should be invalid", w)
		}
	}
}

func TestOnsetDigraphs(t *testing.T) {
	pairs := []string{"ch", "gh", "gi", "kh", "ng", "nh", "ph", "qu", "th", "tr"}
	for _, p := range pairs {
		s := seq(t, p)
		if !Follows(s[0], s[1]) {
			t.Errorf("digraph %q should be a legal bigram", p)
		}
	}
}

func TestCodaRuleNeedsVowel(t *testing.T) {
	// A bare onset is a word in progress, not a finished syllable.
	if !ValidSequence(seq(t, "b")) {
		t.Errorf("bare b should pass while no vowel exists")
	}
	if ValidSequence(seq(t, "ab")) {
		t.Errorf("ab should fail: b cannot close a syllable")
	}
}

func TestProps(t *testing.T) {
	if !InitialInvalid(keys.W) || !InitialInvalid(keys.F) {
		t.Errorf("w and f should be initial-invalid")
	}
	if InitialInvalid(keys.T) {
		t.Errorf("t opens syllables")
	}
	if !CodaInvalid(keys.S) {
		t.Errorf("s should be coda-invalid")
	}
	if CodaInvalid(keys.G) || CodaInvalid(keys.H) {
		t.Errorf("g and h close ng, nh and ch")
	}
}

func TestNonLetterRejected(t *testing.T) {
	if ValidSequence([]uint16{keys.A, keys.N1}) {
		t.Errorf("digit inside a word should be invalid")
	}
}
