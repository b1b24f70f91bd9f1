package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/oskaritimperi/leven/symbols"
)

// TestBytes_OneSymbolPerByte verifies that Bytes splits multi-byte UTF-8
// characters into several symbols while Runes keeps them whole.
func TestBytes_OneSymbolPerByte(t *testing.T) {
	s := "héllo"

	assert.Len(t, symbols.Bytes(s), 6, "é occupies two bytes")
	assert.Len(t, symbols.Runes(s), 5, "é is a single code point")
}

// TestRunes_RoundTrip verifies Runes/String round-trip fidelity.
func TestRunes_RoundTrip(t *testing.T) {
	s := "Σπαμ"

	assert.Equal(t, s, symbols.String(symbols.Runes(s)))
	assert.Equal(t, s, symbols.BytesString(symbols.Bytes(s)))
}

// TestNormalizedRunes_CanonicalEquivalence verifies that NFC folds a
// decomposed sequence onto its precomposed equivalent.
func TestNormalizedRunes_CanonicalEquivalence(t *testing.T) {
	precomposed := "é"        // U+00E9
	decomposed := "é" // e + combining acute

	assert.NotEqual(t, symbols.Runes(precomposed), symbols.Runes(decomposed),
		"raw code points must differ")
	assert.Equal(t,
		symbols.NormalizedRunes(precomposed, norm.NFC),
		symbols.NormalizedRunes(decomposed, norm.NFC),
		"NFC-normalized sequences must be equal")
}

// TestParseForm covers all supported form names and the unknown-name error.
func TestParseForm(t *testing.T) {
	for name, want := range map[string]norm.Form{
		"NFC":  norm.NFC,
		"nfd":  norm.NFD,
		"NFKC": norm.NFKC,
		"nfkd": norm.NFKD,
	} {
		f, err := symbols.ParseForm(name)
		require.NoError(t, err, "form %q must parse", name)
		assert.Equal(t, want, f)
	}

	_, err := symbols.ParseForm("latin-1")
	assert.ErrorIs(t, err, symbols.ErrUnknownForm)
}
