package buffer

import (
	"unicode"

	"vikey/internal/keys"
)

type vowelShape struct {
	key uint16
	mod Modifier
}

// forms holds the six tone variants of every vowel shape, indexed by Tone
// (none, acute, grave, hook, tilde, dot).
var forms = map[vowelShape][6]rune{
	{keys.A, ModNone}:       {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	{keys.A, ModCircumflex}: {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	{keys.A, ModBreve}:      {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	{keys.E, ModNone}:       {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	{keys.E, ModCircumflex}: {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	{keys.I, ModNone}:       {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	{keys.O, ModNone}:       {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	{keys.O, ModCircumflex}: {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	{keys.O, ModHorn}:       {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	{keys.U, ModNone}:       {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	{keys.U, ModHorn}:       {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	{keys.Y, ModNone}:       {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// ModifierAllowed reports whether a vowel key accepts the given shape
// diacritic (circumflex on a/e/o, breve on a, horn on o/u).
func ModifierAllowed(key uint16, mod Modifier) bool {
	if mod == ModNone {
		return keys.IsVowel(key)
	}
	_, ok := forms[vowelShape{key, mod}]
	return ok
}

// Rune renders the character with its diacritics as a single Unicode
// codepoint, or 0 when the keycode has no printable form.
func (c Char) Rune() rune {
	if c.Key == keys.D && c.Stroke {
		if c.Caps {
			return 'Đ'
		}
		return 'đ'
	}
	if keys.IsVowel(c.Key) {
		shape := vowelShape{c.Key, c.Mod}
		set, ok := forms[shape]
		if !ok {
			// Invalid shape for this vowel; drop the modifier.
			set = forms[vowelShape{c.Key, ModNone}]
		}
		r := set[int(c.Tone)%len(set)]
		if c.Caps {
			return unicode.ToUpper(r)
		}
		return r
	}
	return keys.ToRune(c.Key, c.Caps)
}
