// Package buffer holds the in-progress word: the composition buffer of
// annotated characters and the raw keystroke log that mirrors it.
package buffer

import "vikey/internal/keys"

// Cap bounds both the composition buffer and the raw keystroke log.
// A Vietnamese word never comes close; the bound only guards against
// hosts that never send a word boundary.
const Cap = 64

// Tone is one of the five Vietnamese tone marks, or none (thanh ngang).
type Tone uint8

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

// Modifier is a vowel shape diacritic. Tone and Modifier are independent
// axes: a vowel carries at most one of each.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModCircumflex
	ModBreve
	ModHorn
)

// Char is one character of the composition buffer.
type Char struct {
	Key    uint16
	Caps   bool
	Tone   Tone
	Mod    Modifier
	Stroke bool
}

// NewChar returns a plain character for a keystroke.
func NewChar(key uint16, caps bool) Char {
	return Char{Key: key, Caps: caps}
}

// Plain reports whether the character carries no diacritic of any kind.
func (c Char) Plain() bool {
	return c.Tone == ToneNone && c.Mod == ModNone && !c.Stroke
}

// Buffer is the bounded composition buffer. The zero value is empty and
// ready to use.
type Buffer struct {
	chars [Cap]Char
	n     int
}

// Push appends a character. Pushes beyond Cap are dropped.
func (b *Buffer) Push(c Char) {
	if b.n < Cap {
		b.chars[b.n] = c
		b.n++
	}
}

// Pop removes and returns the last character.
func (b *Buffer) Pop() (Char, bool) {
	if b.n == 0 {
		return Char{}, false
	}
	b.n--
	return b.chars[b.n], true
}

// Clear empties the buffer.
func (b *Buffer) Clear() { b.n = 0 }

// Len returns the number of characters held.
func (b *Buffer) Len() int { return b.n }

// Empty reports whether the buffer holds no characters.
func (b *Buffer) Empty() bool { return b.n == 0 }

// Full reports whether the buffer is at capacity.
func (b *Buffer) Full() bool { return b.n == Cap }

// At returns a pointer to the i-th character for in-place mutation,
// or nil when out of range.
func (b *Buffer) At(i int) *Char {
	if i < 0 || i >= b.n {
		return nil
	}
	return &b.chars[i]
}

// Last returns a pointer to the final character, or nil when empty.
func (b *Buffer) Last() *Char {
	if b.n == 0 {
		return nil
	}
	return &b.chars[b.n-1]
}

// Chars returns a read view of the held characters.
func (b *Buffer) Chars() []Char { return b.chars[:b.n] }

// Runes renders the buffer as accented Unicode text.
func (b *Buffer) Runes(dst []rune) []rune {
	for i := 0; i < b.n; i++ {
		if r := b.chars[i].Rune(); r != 0 {
			dst = append(dst, r)
		}
	}
	return dst
}

// String renders the buffer as accented Unicode text.
func (b *Buffer) String() string {
	return string(b.Runes(make([]rune, 0, b.n)))
}

// HasTransforms reports whether any character carries a diacritic.
func (b *Buffer) HasTransforms() bool {
	for i := 0; i < b.n; i++ {
		if !b.chars[i].Plain() {
			return true
		}
	}
	return false
}

// Keystroke is one entry of the raw keystroke log.
type Keystroke struct {
	Key  uint16
	Caps bool
}

// RawLog records the literal keystrokes of the current word, in order.
// It shares the composition buffer's bound and lifecycle so that restore
// and replay always see the exact input that produced the buffer.
type RawLog struct {
	ks [Cap]Keystroke
	n  int
}

// Push appends a keystroke. Pushes beyond Cap are dropped, matching the
// composition buffer so the two never drift.
func (l *RawLog) Push(key uint16, caps bool) {
	if l.n < Cap {
		l.ks[l.n] = Keystroke{Key: key, Caps: caps}
		l.n++
	}
}

// Pop removes the last keystroke.
func (l *RawLog) Pop() (Keystroke, bool) {
	if l.n == 0 {
		return Keystroke{}, false
	}
	l.n--
	return l.ks[l.n], true
}

// Clear empties the log.
func (l *RawLog) Clear() { l.n = 0 }

// Len returns the number of recorded keystrokes.
func (l *RawLog) Len() int { return l.n }

// Empty reports whether the log holds no keystrokes.
func (l *RawLog) Empty() bool { return l.n == 0 }

// Full reports whether the log is at capacity.
func (l *RawLog) Full() bool { return l.n == Cap }

// Keystrokes returns a read view of the recorded keystrokes.
func (l *RawLog) Keystrokes() []Keystroke { return l.ks[:l.n] }

// Runes renders the log as literal ASCII text.
func (l *RawLog) Runes(dst []rune) []rune {
	for i := 0; i < l.n; i++ {
		if r := keys.ToRune(l.ks[i].Key, l.ks[i].Caps); r != 0 {
			dst = append(dst, r)
		}
	}
	return dst
}

// String renders the log as literal ASCII text.
func (l *RawLog) String() string {
	return string(l.Runes(make([]rune, 0, l.n)))
}
