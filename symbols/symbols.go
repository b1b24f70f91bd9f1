package symbols

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownForm indicates an unrecognized Unicode normalization form name.
var ErrUnknownForm = errors.New("symbols: unknown Unicode normalization form")

// Bytes returns s as a byte sequence, one symbol per byte.
// Suitable for ASCII and single-byte encodings; multi-byte UTF-8
// characters count as several symbols.
func Bytes(s string) []byte { return []byte(s) }

// Runes returns s as a code-point sequence, one symbol per Unicode
// code point. No normalization is performed.
func Runes(s string) []rune { return []rune(s) }

// NormalizedRunes returns s as a code-point sequence after applying the
// given Unicode normalization form, so that canonically (or, for the K
// forms, compatibly) equivalent strings yield equal sequences.
func NormalizedRunes(s string, f norm.Form) []rune {
	return []rune(f.String(s))
}

// ParseForm maps a form name ("NFC", "NFD", "NFKC", "NFKD", case-insensitive)
// to its norm.Form. Unknown names yield ErrUnknownForm.
func ParseForm(name string) (norm.Form, error) {
	switch strings.ToUpper(name) {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return 0, ErrUnknownForm
}

// String converts a code-point sequence back to a string.
func String(seq []rune) string { return string(seq) }

// BytesString converts a byte sequence back to a string.
func BytesString(seq []byte) string { return string(seq) }
