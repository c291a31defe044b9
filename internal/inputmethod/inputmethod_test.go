package inputmethod

import (
	"testing"

	"vikey/internal/buffer"
	"vikey/internal/keys"
)

func TestTelexToneKeys(t *testing.T) {
	cases := []struct {
		key  uint16
		tone buffer.Tone
	}{
		{keys.S, buffer.ToneAcute},
		{keys.F, buffer.ToneGrave},
		{keys.R, buffer.ToneHook},
		{keys.X, buffer.ToneTilde},
		{keys.J, buffer.ToneDot},
	}
	for _, tc := range cases {
		a := Lookup(Telex, tc.key)
		if a.Kind != Tone || a.Tone != tc.tone {
			t.Errorf("key %d: got %+v, want tone %d", tc.key, a, tc.tone)
		}
	}
	if a := Lookup(Telex, keys.Z); a.Kind != ClearTone {
		t.Errorf("z should clear tone, got %+v", a)
	}
}

func TestTelexModifierKeys(t *testing.T) {
	for _, k := range []uint16{keys.A, keys.E, keys.O} {
		a := Lookup(Telex, k)
		if a.Kind != Modifier || a.Mod != buffer.ModCircumflex {
			t.Errorf("key %d should propose circumflex, got %+v", k, a)
		}
	}
	if a := Lookup(Telex, keys.W); a.Kind != Modifier || a.Mod != buffer.ModHorn {
		t.Errorf("w should propose horn, got %+v", a)
	}
	if a := Lookup(Telex, keys.D); a.Kind != Stroke {
		t.Errorf("d should propose stroke, got %+v", a)
	}
}

func TestVNIDigits(t *testing.T) {
	if a := Lookup(VNI, keys.N2); a.Kind != Tone || a.Tone != buffer.ToneGrave {
		t.Errorf("VNI 2 should be grave tone, got %+v", a)
	}
	if a := Lookup(VNI, keys.N6); a.Kind != Modifier || a.Mod != buffer.ModCircumflex {
		t.Errorf("VNI 6 should be circumflex, got %+v", a)
	}
	if a := Lookup(VNI, keys.N8); a.Kind != Modifier || a.Mod != buffer.ModBreve {
		t.Errorf("VNI 8 should be breve, got %+v", a)
	}
	if a := Lookup(VNI, keys.N9); a.Kind != Stroke {
		t.Errorf("VNI 9 should be stroke, got %+v", a)
	}
	if a := Lookup(VNI, keys.N0); a.Kind != ClearTone {
		t.Errorf("VNI 0 should clear tone, got %+v", a)
	}
}

func TestMethodsDoNotOverlap(t *testing.T) {
	// Telex letters mean nothing in VNI and vice versa.
	if a := Lookup(VNI, keys.S); a.Kind != None {
		t.Errorf("s has no VNI meaning, got %+v", a)
	}
	if a := Lookup(Telex, keys.N1); a.Kind != None {
		t.Errorf("1 has no Telex meaning, got %+v", a)
	}
}

func TestIsModifierKey(t *testing.T) {
	if !IsModifierKey(VNI, keys.N5) {
		t.Errorf("VNI 5 is a modifier key")
	}
	if IsModifierKey(Telex, keys.N5) {
		t.Errorf("Telex 5 is not a modifier key")
	}
	if !IsModifierKey(Telex, keys.W) {
		t.Errorf("Telex w is a modifier key")
	}
}
