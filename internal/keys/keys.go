// Package keys defines the virtual keycodes the engine works with and
// classification helpers over them. The codes follow the macOS virtual
// keycode layout; hosts on other platforms translate through FromASCII.
package keys

// Letters.
const (
	A uint16 = 0
	S uint16 = 1
	D uint16 = 2
	F uint16 = 3
	H uint16 = 4
	G uint16 = 5
	Z uint16 = 6
	X uint16 = 7
	C uint16 = 8
	V uint16 = 9
	B uint16 = 11
	Q uint16 = 12
	W uint16 = 13
	E uint16 = 14
	R uint16 = 15
	Y uint16 = 16
	T uint16 = 17
	O uint16 = 31
	U uint16 = 32
	I uint16 = 34
	P uint16 = 35
	L uint16 = 37
	J uint16 = 38
	K uint16 = 40
	N uint16 = 45
	M uint16 = 46
)

// Digits.
const (
	N1 uint16 = 18
	N2 uint16 = 19
	N3 uint16 = 20
	N4 uint16 = 21
	N5 uint16 = 23
	N6 uint16 = 22
	N7 uint16 = 26
	N8 uint16 = 28
	N9 uint16 = 25
	N0 uint16 = 29
)

// Control and punctuation.
const (
	Space     uint16 = 49
	Backspace uint16 = 51
	Tab       uint16 = 48
	Return    uint16 = 36
	Enter     uint16 = 76
	Esc       uint16 = 53
	Left      uint16 = 123
	Right     uint16 = 124
	Down      uint16 = 125
	Up        uint16 = 126

	Dot       uint16 = 47
	Comma     uint16 = 43
	Slash     uint16 = 44
	Semicolon uint16 = 41
	Quote     uint16 = 39
	LBracket  uint16 = 33
	RBracket  uint16 = 30
	Backslash uint16 = 42
	Minus     uint16 = 27
	Equal     uint16 = 24
	Backquote uint16 = 50
)

// Invalid marks a keycode the engine does not handle.
const Invalid uint16 = 0xFFFF

// MaxCode bounds the keycode space covered by the classification tables.
const MaxCode = 128

const (
	propLetter uint16 = 1 << iota
	propVowel
	propNumber
	propBreak
)

var props = buildProps()

func buildProps() [MaxCode]uint16 {
	var p [MaxCode]uint16
	letters := []uint16{A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z}
	for _, k := range letters {
		p[k] |= propLetter
	}
	for _, k := range []uint16{A, E, I, O, U, Y} {
		p[k] |= propVowel
	}
	for _, k := range []uint16{N0, N1, N2, N3, N4, N5, N6, N7, N8, N9} {
		p[k] |= propNumber
	}
	breaks := []uint16{
		Space, Tab, Return, Enter, Esc, Left, Right, Up, Down,
		Dot, Comma, Slash, Semicolon, Quote, LBracket, RBracket,
		Backslash, Minus, Equal, Backquote,
	}
	for _, k := range breaks {
		p[k] |= propBreak
	}
	return p
}

func has(key uint16, prop uint16) bool {
	return key < MaxCode && props[key]&prop != 0
}

// IsLetter reports whether key is one of the 26 letter keys.
func IsLetter(key uint16) bool { return has(key, propLetter) }

// IsVowel reports whether key is a vowel letter (a, e, i, o, u, y).
func IsVowel(key uint16) bool { return has(key, propVowel) }

// IsConsonant reports whether key is a consonant letter.
func IsConsonant(key uint16) bool { return IsLetter(key) && !IsVowel(key) }

// IsNumber reports whether key is a digit key.
func IsNumber(key uint16) bool { return has(key, propNumber) }

// IsBreak reports whether key ends the current word (space, punctuation,
// arrows, control keys). Digits are break keys too unless the active input
// method claims them as modifiers; the engine decides that.
func IsBreak(key uint16) bool { return has(key, propBreak) }

var asciiToKey = map[byte]uint16{
	'a': A, 's': S, 'd': D, 'f': F, 'h': H, 'g': G, 'z': Z, 'x': X,
	'c': C, 'v': V, 'b': B, 'q': Q, 'w': W, 'e': E, 'r': R, 'y': Y,
	't': T, 'o': O, 'u': U, 'i': I, 'p': P, 'l': L, 'j': J, 'k': K,
	'n': N, 'm': M,
	'1': N1, '2': N2, '3': N3, '4': N4, '5': N5,
	'6': N6, '7': N7, '8': N8, '9': N9, '0': N0,
	' ': Space, '.': Dot, ',': Comma, '/': Slash, ';': Semicolon,
	'\'': Quote, '[': LBracket, ']': RBracket, '\\': Backslash,
	'-': Minus, '=': Equal, '`': Backquote,
	'\t': Tab, '\r': Return, '\n': Return,
	0x08: Backspace, 0x7F: Backspace, 0x1B: Esc,
}

var keyToLower = buildKeyToLower()

func buildKeyToLower() [MaxCode]byte {
	var t [MaxCode]byte
	for b, k := range asciiToKey {
		lower := b
		if b >= 'A' && b <= 'Z' {
			lower = b + ('a' - 'A')
		}
		if k < MaxCode && t[k] == 0 {
			t[k] = lower
		}
	}
	// Map collisions deterministically.
	t[Backspace] = 0x08
	t[Return] = '\r'
	return t
}

// FromASCII converts an ASCII byte to its keycode. Uppercase letters map
// to the same keycode as lowercase; the caps flag travels separately.
func FromASCII(b byte) (uint16, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	k, ok := asciiToKey[b]
	return k, ok
}

// ToRune renders a keycode back to its literal character, honoring caps
// for letters. Returns 0 for keys with no printable form.
func ToRune(key uint16, caps bool) rune {
	if key >= MaxCode {
		return 0
	}
	b := keyToLower[key]
	if b < 0x20 || b == 0x7F || b == 0 {
		if key == Space {
			return ' '
		}
		return 0
	}
	r := rune(b)
	if caps && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r
}
