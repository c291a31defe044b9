// Package transform mutates the composition buffer: applying and
// reverting tone marks, shape diacritics and the d stroke, and keeping
// tone position and the ươ compound consistent as the word grows.
//
// Transforms here are purely mechanical. Whether a transform should be
// accepted at all is the caller's decision, made with the phonotactic
// validator against a snapshot.
package transform

import (
	"vikey/internal/buffer"
	"vikey/internal/keys"
	"vikey/internal/syllable"
)

// Outcome reports what a transform did.
type Outcome uint8

const (
	// Rejected: no character could take the transform; the keystroke
	// keeps its literal meaning.
	Rejected Outcome = iota
	// Applied: the buffer changed.
	Applied
	// Reverted: the same transform was already present and has been
	// removed. The keystroke becomes literal again (double-key revert).
	Reverted
)

// ApplyTone puts a tone mark on the placement vowel. Pressing the key of
// the tone already present removes it instead.
func ApplyTone(b *buffer.Buffer, tone buffer.Tone, modern bool) Outcome {
	target := syllable.ToneTarget(b.Chars(), modern)
	if target == -1 {
		return Rejected
	}
	c := b.At(target)
	if c.Tone == tone {
		c.Tone = buffer.ToneNone
		return Reverted
	}
	// One tone per word: clear marks left behind by earlier placement.
	for i := 0; i < b.Len(); i++ {
		b.At(i).Tone = buffer.ToneNone
	}
	c.Tone = tone
	return Applied
}

// ClearTone removes every tone mark in the buffer.
func ClearTone(b *buffer.Buffer) Outcome {
	cleared := false
	for i := 0; i < b.Len(); i++ {
		if c := b.At(i); c.Tone != buffer.ToneNone {
			c.Tone = buffer.ToneNone
			cleared = true
		}
	}
	if !cleared {
		return Rejected
	}
	return Applied
}

// ApplyCircumflex marks a nucleus vowel. For Telex the trigger is the
// doubled vowel key and only an identical trailing vowel can take the
// mark; for VNI pass keys.Invalid and the last a, e or o wins.
func ApplyCircumflex(b *buffer.Buffer, trigger uint16) Outcome {
	start, end := syllable.NucleusRange(b.Chars())
	if start == -1 {
		return Rejected
	}
	if trigger != keys.Invalid {
		// Doubling only: the doubled vowel must be the trailing char.
		c := b.Last()
		if c.Key != trigger || !buffer.ModifierAllowed(c.Key, buffer.ModCircumflex) {
			return Rejected
		}
		return toggleMod(c, buffer.ModCircumflex)
	}
	for i := end - 1; i >= start; i-- {
		c := b.At(i)
		if !buffer.ModifierAllowed(c.Key, buffer.ModCircumflex) {
			continue
		}
		return toggleMod(c, buffer.ModCircumflex)
	}
	return Rejected
}

func toggleMod(c *buffer.Char, mod buffer.Modifier) Outcome {
	if c.Mod == mod {
		c.Mod = buffer.ModNone
		return Reverted
	}
	c.Mod = mod
	return Applied
}

// ApplyHorn marks u or o. An adjacent uo pair in the nucleus takes the
// horn as a unit, forming ươ, except after a q onset.
func ApplyHorn(b *buffer.Buffer) Outcome {
	chars := b.Chars()
	start, end := syllable.NucleusRange(chars)
	if start == -1 {
		return Rejected
	}
	if !syllable.OnsetQ(chars) {
		for i := start; i < end-1; i++ {
			u, o := b.At(i), b.At(i+1)
			if u.Key != keys.U || o.Key != keys.O {
				continue
			}
			if u.Mod == buffer.ModHorn && o.Mod == buffer.ModHorn {
				u.Mod = buffer.ModNone
				o.Mod = buffer.ModNone
				return Reverted
			}
			if (u.Mod == buffer.ModNone || u.Mod == buffer.ModHorn) &&
				(o.Mod == buffer.ModNone || o.Mod == buffer.ModHorn) {
				u.Mod = buffer.ModHorn
				o.Mod = buffer.ModHorn
				return Applied
			}
		}
	}
	for i := end - 1; i >= start; i-- {
		c := b.At(i)
		if !buffer.ModifierAllowed(c.Key, buffer.ModHorn) {
			continue
		}
		if c.Mod == buffer.ModHorn {
			c.Mod = buffer.ModNone
			return Reverted
		}
		c.Mod = buffer.ModHorn
		return Applied
	}
	return Rejected
}

// ApplyBreve marks the last a of the nucleus.
func ApplyBreve(b *buffer.Buffer) Outcome {
	start, end := syllable.NucleusRange(b.Chars())
	if start == -1 {
		return Rejected
	}
	for i := end - 1; i >= start; i-- {
		c := b.At(i)
		if c.Key != keys.A {
			continue
		}
		if c.Mod == buffer.ModBreve {
			c.Mod = buffer.ModNone
			return Reverted
		}
		c.Mod = buffer.ModBreve
		return Applied
	}
	return Rejected
}

// ApplyHornOrBreve resolves the Telex w key: horn when the nucleus offers
// u or o, breve on a otherwise.
func ApplyHornOrBreve(b *buffer.Buffer) Outcome {
	if out := ApplyHorn(b); out != Rejected {
		return out
	}
	return ApplyBreve(b)
}

// ApplyStroke toggles the stroke on a word-initial d.
func ApplyStroke(b *buffer.Buffer) Outcome {
	c := b.At(0)
	if c == nil || c.Key != keys.D {
		return Rejected
	}
	if c.Stroke {
		c.Stroke = false
		return Reverted
	}
	c.Stroke = true
	return Applied
}

// NormalizeCompound upgrades a trailing ưo to ươ. Called after a vowel
// lands so that ư typed first (standalone w, or uw before o) still yields
// the compound.
func NormalizeCompound(b *buffer.Buffer) {
	n := b.Len()
	if n < 2 {
		return
	}
	u, o := b.At(n-2), b.At(n-1)
	if u.Key == keys.U && u.Mod == buffer.ModHorn &&
		o.Key == keys.O && o.Mod == buffer.ModNone && o.Tone == buffer.ToneNone {
		o.Mod = buffer.ModHorn
	}
}

// RepositionTone moves an already-placed tone mark when a newly appended
// letter changes where the mark belongs, as in hó + a becoming hoá.
func RepositionTone(b *buffer.Buffer, modern bool) {
	from := -1
	for i := 0; i < b.Len(); i++ {
		if b.At(i).Tone != buffer.ToneNone {
			from = i
			break
		}
	}
	if from == -1 {
		return
	}
	to := syllable.ToneTarget(b.Chars(), modern)
	if to == -1 || to == from {
		return
	}
	b.At(to).Tone = b.At(from).Tone
	b.At(from).Tone = buffer.ToneNone
}
