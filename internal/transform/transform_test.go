package transform

import (
	"testing"

	"vikey/internal/buffer"
	"vikey/internal/keys"
)

func build(t *testing.T, s string) *buffer.Buffer {
	t.Helper()
	var b buffer.Buffer
	for i := 0; i < len(s); i++ {
		up := s[i] >= 'A' && s[i] <= 'Z'
		k, ok := keys.FromASCII(s[i])
		if !ok {
			t.Fatalf("no keycode for %q", s[i])
		}
		b.Push(buffer.NewChar(k, up))
	}
	return &b
}

func TestApplyTonePlacement(t *testing.T) {
	cases := []struct {
		in     string
		tone   buffer.Tone
		modern bool
		want   string
	}{
		{"mua", buffer.ToneAcute, true, "múa"},
		{"quan", buffer.ToneAcute, true, "quán"},
		{"hoa", buffer.ToneAcute, true, "hoá"},
		{"hoa", buffer.ToneAcute, false, "hóa"},
		{"xoai", buffer.ToneGrave, true, "xoài"},
		{"an", buffer.ToneDot, true, "ạn"},
	}
	for _, tc := range cases {
		b := build(t, tc.in)
		if out := ApplyTone(b, tc.tone, tc.modern); out != Applied {
			t.Errorf("%q: outcome %v, want Applied", tc.in, out)
			continue
		}
		if got := b.String(); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyToneNoVowel(t *testing.T) {
	b := build(t, "th")
	if out := ApplyTone(b, buffer.ToneAcute, true); out != Rejected {
		t.Fatalf("toneless consonants should reject, got %v", out)
	}
}

func TestDoubleToneReverts(t *testing.T) {
	b := build(t, "la")
	ApplyTone(b, buffer.ToneAcute, true)
	if out := ApplyTone(b, buffer.ToneAcute, true); out != Reverted {
		t.Fatalf("second acute should revert, got %v", out)
	}
	if got := b.String(); got != "la" {
		t.Fatalf("tone should be gone, got %q", got)
	}
}

func TestToneReplacesTone(t *testing.T) {
	b := build(t, "ma")
	ApplyTone(b, buffer.ToneAcute, true)
	if out := ApplyTone(b, buffer.ToneGrave, true); out != Applied {
		t.Fatalf("grave should replace acute, got %v", out)
	}
	if got := b.String(); got != "mà" {
		t.Fatalf("got %q, want mà", got)
	}
}

func TestClearTone(t *testing.T) {
	b := build(t, "ma")
	ApplyTone(b, buffer.ToneHook, true)
	if out := ClearTone(b); out != Applied || b.String() != "ma" {
		t.Fatalf("clear failed: %v %q", out, b.String())
	}
	if out := ClearTone(b); out != Rejected {
		t.Fatalf("clearing nothing should reject, got %v", out)
	}
}

func TestCircumflexTelex(t *testing.T) {
	b := build(t, "vie")
	if out := ApplyCircumflex(b, keys.E); out != Applied || b.String() != "viê" {
		t.Fatalf("got %v %q", out, b.String())
	}
	// Same trigger again reverts.
	if out := ApplyCircumflex(b, keys.E); out != Reverted || b.String() != "vie" {
		t.Fatalf("got %v %q", out, b.String())
	}
	// a cannot circumflex an e.
	b = build(t, "vie")
	if out := ApplyCircumflex(b, keys.A); out != Rejected {
		t.Fatalf("mismatched trigger should reject, got %v", out)
	}
}

func TestCircumflexNeedsAdjacency(t *testing.T) {
	// hoa + a doubles the trailing a.
	b := build(t, "hoa")
	if out := ApplyCircumflex(b, keys.A); out != Applied || b.String() != "hoâ" {
		t.Fatalf("got %v %q", out, b.String())
	}
	// viet + e does not: the e is no longer trailing.
	b = build(t, "viet")
	if out := ApplyCircumflex(b, keys.E); out != Rejected {
		t.Fatalf("non-trailing vowel must not double, got %v", out)
	}
}

func TestCircumflexVNI(t *testing.T) {
	b := build(t, "thue")
	if out := ApplyCircumflex(b, keys.Invalid); out != Applied || b.String() != "thuê" {
		t.Fatalf("got %v %q", out, b.String())
	}
}

func TestHornCompound(t *testing.T) {
	b := build(t, "duong")
	if out := ApplyHorn(b); out != Applied || b.String() != "dương" {
		t.Fatalf("got %v %q", out, b.String())
	}
	if out := ApplyHorn(b); out != Reverted || b.String() != "duong" {
		t.Fatalf("second horn should revert: %v %q", out, b.String())
	}
}

func TestHornSingleVowel(t *testing.T) {
	b := build(t, "tu")
	if out := ApplyHorn(b); out != Applied || b.String() != "tư" {
		t.Fatalf("got %v %q", out, b.String())
	}
}

func TestHornAfterQTakesOnlyO(t *testing.T) {
	b := build(t, "quo")
	if out := ApplyHorn(b); out != Applied || b.String() != "quơ" {
		t.Fatalf("got %v %q", out, b.String())
	}
}

func TestBreve(t *testing.T) {
	b := build(t, "an")
	if out := ApplyBreve(b); out != Applied || b.String() != "ăn" {
		t.Fatalf("got %v %q", out, b.String())
	}
}

func TestHornOrBreve(t *testing.T) {
	b := build(t, "tha")
	if out := ApplyHornOrBreve(b); out != Applied || b.String() != "thă" {
		t.Fatalf("w on a should breve: %v %q", out, b.String())
	}
	b = build(t, "thu")
	if out := ApplyHornOrBreve(b); out != Applied || b.String() != "thư" {
		t.Fatalf("w on u should horn: %v %q", out, b.String())
	}
}

func TestStroke(t *testing.T) {
	b := build(t, "do")
	if out := ApplyStroke(b); out != Applied || b.String() != "đo" {
		t.Fatalf("got %v %q", out, b.String())
	}
	if out := ApplyStroke(b); out != Reverted || b.String() != "do" {
		t.Fatalf("second stroke should revert: %v %q", out, b.String())
	}
	b = build(t, "ba")
	if out := ApplyStroke(b); out != Rejected {
		t.Fatalf("stroke needs a leading d, got %v", out)
	}
}

func TestNormalizeCompound(t *testing.T) {
	b := build(t, "tu")
	ApplyHorn(b)
	b.Push(buffer.NewChar(keys.O, false))
	NormalizeCompound(b)
	if got := b.String(); got != "tươ" {
		t.Fatalf("got %q, want tươ", got)
	}
}

func TestRepositionTone(t *testing.T) {
	// hó + a moves the mark in modern style, keeps it in traditional.
	b := build(t, "ho")
	ApplyTone(b, buffer.ToneAcute, true)
	b.Push(buffer.NewChar(keys.A, false))
	RepositionTone(b, true)
	if got := b.String(); got != "hoá" {
		t.Fatalf("modern: got %q, want hoá", got)
	}

	b = build(t, "ho")
	ApplyTone(b, buffer.ToneAcute, false)
	b.Push(buffer.NewChar(keys.A, false))
	RepositionTone(b, false)
	if got := b.String(); got != "hóa" {
		t.Fatalf("traditional: got %q, want hóa", got)
	}

	// toá + n: closing the syllable keeps the mark on a.
	b = build(t, "toa")
	ApplyTone(b, buffer.ToneAcute, true)
	b.Push(buffer.NewChar(keys.N, false))
	RepositionTone(b, true)
	if got := b.String(); got != "toán" {
		t.Fatalf("closed: got %q, want toán", got)
	}
}
