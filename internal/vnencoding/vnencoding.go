// Package vnencoding converts committed text from the engine's canonical
// Unicode into the legacy Vietnamese byte encodings some hosts still
// need. Conversion happens at commit time only; everything upstream
// works in Unicode.
package vnencoding

import (
	"golang.org/x/text/unicode/norm"
)

// Encoding selects the output byte encoding. The numeric values are part
// of the host interface and must stay stable.
type Encoding uint8

const (
	Unicode Encoding = iota
	TCVN3
	VNI
	CP1258
)

// FromUint8 maps a host-supplied selector to an Encoding, defaulting to
// Unicode for unknown values.
func FromUint8(v uint8) Encoding {
	switch Encoding(v) {
	case TCVN3, VNI, CP1258:
		return Encoding(v)
	default:
		return Unicode
	}
}

func (e Encoding) String() string {
	switch e {
	case TCVN3:
		return "tcvn3"
	case VNI:
		return "vni"
	case CP1258:
		return "cp1258"
	default:
		return "unicode"
	}
}

// Convert encodes s into the target encoding. The input is normalized to
// NFC first so that hosts feeding decomposed text still hit the
// single-codepoint tables.
func Convert(s string, e Encoding) []byte {
	s = norm.NFC.String(s)
	switch e {
	case TCVN3:
		return convertTable(s, tcvn3, '?')
	case CP1258:
		return convertTable(s, cp1258, 0)
	default:
		// Unicode, and VNI which has no single-byte form; VNI hosts
		// receive UTF-8 as-is.
		return []byte(s)
	}
}

// convertTable maps each rune through a single-byte table. ASCII passes
// through. Runes missing from the table emit the fallback byte, or their
// UTF-8 bytes when fallback is 0.
func convertTable(s string, table map[rune]byte, fallback byte) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}
		if b, ok := table[r]; ok {
			out = append(out, b)
			continue
		}
		if fallback != 0 {
			out = append(out, fallback)
			continue
		}
		out = append(out, []byte(string(r))...)
	}
	return out
}
