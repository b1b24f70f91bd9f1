// Package symbols defines the symbol-sequence model shared by every
// algorithm package in this module.
//
// A sequence is a plain Go slice of comparable symbols. The two supported
// instantiations are byte sequences ([]byte, one symbol per byte) and
// code-point sequences ([]rune, one symbol per Unicode code point); both
// flow through the same generic algorithm code, so there is no duplicated
// byte vs. wide-character path anywhere in the module.
//
// Sequences are treated as immutable: no function in this module mutates
// an input slice, which makes concurrent calls on shared inputs safe as
// long as callers also refrain from mutation.
//
// The core is deliberately locale- and grapheme-unaware: equality is plain
// symbol equality. Callers who want canonically equivalent strings to
// compare equal should normalize at construction time via NormalizedRunes
// (Unicode normalization forms NFC/NFD/NFKC/NFKD).
package symbols
