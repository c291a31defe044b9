// Package inputmethod maps keystrokes to composition actions for the two
// supported typing conventions. The mapping set is fixed, so dispatch is a
// closed enum over compile-time tables rather than an open interface.
package inputmethod

import (
	"vikey/internal/buffer"
	"vikey/internal/keys"
)

// Method selects the active typing convention.
type Method uint8

const (
	Telex Method = iota
	VNI
)

func (m Method) String() string {
	switch m {
	case Telex:
		return "telex"
	case VNI:
		return "vni"
	default:
		return "unknown"
	}
}

// Kind tags the action a keystroke proposes.
type Kind uint8

const (
	// None: the key carries no composition meaning; it is a literal
	// letter, a break, or something the host should keep.
	None Kind = iota
	// Tone applies one of the five tone marks.
	Tone
	// ClearTone removes the tone mark (Telex z, VNI 0).
	ClearTone
	// Modifier applies a vowel shape diacritic. For Telex w the breve
	// versus horn choice depends on the nucleus; the transformer decides.
	Modifier
	// Stroke turns d into đ.
	Stroke
)

// Action is a proposed composition step. Whether it actually applies is
// decided downstream by the validator and the English guard.
type Action struct {
	Kind Kind
	Tone buffer.Tone
	Mod  buffer.Modifier
}

var telexTable = buildTelex()
var vniTable = buildVNI()

func buildTelex() map[uint16]Action {
	return map[uint16]Action{
		keys.S: {Kind: Tone, Tone: buffer.ToneAcute},
		keys.F: {Kind: Tone, Tone: buffer.ToneGrave},
		keys.R: {Kind: Tone, Tone: buffer.ToneHook},
		keys.X: {Kind: Tone, Tone: buffer.ToneTilde},
		keys.J: {Kind: Tone, Tone: buffer.ToneDot},
		keys.Z: {Kind: ClearTone},
		// Doubled vowels: the transformer only applies these when the
		// buffer ends with the same vowel.
		keys.A: {Kind: Modifier, Mod: buffer.ModCircumflex},
		keys.E: {Kind: Modifier, Mod: buffer.ModCircumflex},
		keys.O: {Kind: Modifier, Mod: buffer.ModCircumflex},
		keys.W: {Kind: Modifier, Mod: buffer.ModHorn},
		keys.D: {Kind: Stroke},
	}
}

func buildVNI() map[uint16]Action {
	return map[uint16]Action{
		keys.N1: {Kind: Tone, Tone: buffer.ToneAcute},
		keys.N2: {Kind: Tone, Tone: buffer.ToneGrave},
		keys.N3: {Kind: Tone, Tone: buffer.ToneHook},
		keys.N4: {Kind: Tone, Tone: buffer.ToneTilde},
		keys.N5: {Kind: Tone, Tone: buffer.ToneDot},
		keys.N0: {Kind: ClearTone},
		keys.N6: {Kind: Modifier, Mod: buffer.ModCircumflex},
		keys.N7: {Kind: Modifier, Mod: buffer.ModHorn},
		keys.N8: {Kind: Modifier, Mod: buffer.ModBreve},
		keys.N9: {Kind: Stroke},
	}
}

// Lookup returns the action a keystroke proposes under the given method.
func Lookup(m Method, key uint16) Action {
	var table map[uint16]Action
	switch m {
	case Telex:
		table = telexTable
	case VNI:
		table = vniTable
	default:
		return Action{}
	}
	if a, ok := table[key]; ok {
		return a
	}
	return Action{}
}

// IsModifierKey reports whether the key has any composition meaning under
// the method. Used to keep VNI digits from acting as word breaks.
func IsModifierKey(m Method, key uint16) bool {
	return Lookup(m, key).Kind != None
}
