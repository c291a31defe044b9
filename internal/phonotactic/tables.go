package phonotactic

import "vikey/internal/keys"

const (
	propInitialInvalid uint16 = 1 << iota
	propCodaInvalid
)

var props = buildProps()

func buildProps() [keys.MaxCode]uint16 {
	var p [keys.MaxCode]uint16
	for _, b := range []byte("fjwz") {
		k, _ := keys.FromASCII(b)
		p[k] |= propInitialInvalid
	}
	// Letters that can never close a syllable. g and h are absent: they
	// close ng, nh and ch.
	for _, b := range []byte("bdfjklqrsvwxz") {
		k, _ := keys.FromASCII(b)
		p[k] |= propCodaInvalid
	}
	return p
}

// follows lists, per letter, every letter that may legally come next
// inside one syllable: vowel clusters, coda consonants, and the second
// letter of onset digraphs (ch, gh, gi, kh, ng, nh, ph, qu, th, tr).
var follows = map[byte]string{
	'a': "acimnoptuy",
	'e': "cemnoptu",
	'i': "acemnoptu",
	'o': "aceimnopt",
	'u': "aceimnoptuy",
	'y': "aentu",

	'b': "aeiouy",
	'c': "ahou",
	'd': "adeiouy",
	'g': "ahiou",
	'h': "aeiouy",
	'k': "ehiy",
	'l': "aeiouy",
	'm': "aeiouy",
	'n': "aeghiouy",
	'p': "aehiouy",
	'q': "u",
	'r': "aeiouy",
	's': "aeiouy",
	't': "aehioruy",
	'v': "aeiouy",
	'x': "aeiouy",
}

var bigrams = buildBigrams()

func buildBigrams() [keys.MaxCode][keys.MaxCode]bool {
	var m [keys.MaxCode][keys.MaxCode]bool
	for from, tos := range follows {
		fk, ok := keys.FromASCII(from)
		if !ok {
			continue
		}
		for i := 0; i < len(tos); i++ {
			tk, ok := keys.FromASCII(tos[i])
			if !ok {
				continue
			}
			m[fk][tk] = true
		}
	}
	return m
}

// nuclei whitelists every legal vowel run, written with base letters
// (diacritics stripped). A run not listed here never forms a syllable.
var nuclei = buildNuclei()

func buildNuclei() map[string]struct{} {
	list := []string{
		"a", "e", "i", "o", "u", "y",
		"ai", "ao", "au", "ay",
		"eo", "eu",
		"ia", "ie", "io", "iu",
		"oa", "oe", "oi", "oo",
		"ua", "ue", "ui", "uo", "uu", "uy",
		"ye",
		"ieu", "oai", "oao", "oay", "oeo",
		"uai", "uao", "uau", "uay",
		"uoi", "uou", "uya", "uye", "uyu",
		"yeu",
	}
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}

// InitialInvalid reports whether the letter can never start a syllable.
func InitialInvalid(key uint16) bool {
	return key < keys.MaxCode && props[key]&propInitialInvalid != 0
}

// CodaInvalid reports whether the letter can never close a syllable.
func CodaInvalid(key uint16) bool {
	return key < keys.MaxCode && props[key]&propCodaInvalid != 0
}

// Follows reports whether b may legally come after a inside one syllable.
func Follows(a, b uint16) bool {
	return a < keys.MaxCode && b < keys.MaxCode && bigrams[a][b]
}
