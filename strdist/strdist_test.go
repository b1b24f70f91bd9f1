package strdist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskaritimperi/leven/strdist"
	"github.com/oskaritimperi/leven/symbols"
)

// words used by the metric-property tests below.
var words = []string{"", "a", "ab", "ba", "spam", "park", "Levenshtein", "Lenvinsten", "Hello world!"}

// TestDistance_Fixtures pins reference distances.
func TestDistance_Fixtures(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want int
	}{
		{"Levenshtein", "Lenvinsten", 4},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"spam", "park", 3},
	} {
		assert.Equal(t, tc.want, strdist.Distance(symbols.Bytes(tc.a), symbols.Bytes(tc.b)),
			"Distance(%q, %q)", tc.a, tc.b)
	}
}

// TestDistance_ByteRuneParity verifies that the byte and code-point
// instantiations agree on ASCII input and that runes handle wide symbols.
func TestDistance_ByteRuneParity(t *testing.T) {
	assert.Equal(t,
		strdist.Distance(symbols.Bytes("kitten"), symbols.Bytes("sitting")),
		strdist.Distance(symbols.Runes("kitten"), symbols.Runes("sitting")))

	// One code point substituted, regardless of encoded width.
	assert.Equal(t, 1, strdist.Distance(symbols.Runes("naïve"), symbols.Runes("naive")))
}

// TestDistance_MetricProperties verifies identity, symmetry and the
// triangle inequality for the unit-cost distance over a small word set.
func TestDistance_MetricProperties(t *testing.T) {
	for _, a := range words {
		sa := symbols.Bytes(a)
		assert.Zero(t, strdist.Distance(sa, sa), "Distance(%q, %q)", a, a)
		for _, b := range words {
			sb := symbols.Bytes(b)
			dab := strdist.Distance(sa, sb)
			assert.Equal(t, dab, strdist.Distance(sb, sa), "symmetry for %q, %q", a, b)
			for _, c := range words {
				sc := symbols.Bytes(c)
				assert.LessOrEqual(t, strdist.Distance(sa, sc), dab+strdist.Distance(sb, sc),
					"triangle inequality for %q, %q, %q", a, b, c)
			}
		}
	}
}

// TestDistanceWeighted_SubstitutionWeight verifies the two legal weights
// and the rejection of everything else.
func TestDistanceWeighted_SubstitutionWeight(t *testing.T) {
	a, b := symbols.Bytes("abc"), symbols.Bytes("axc")

	opts := strdist.DefaultOptions()
	d, err := strdist.DistanceWeighted(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, d, "unit substitution")

	d, err = strdist.DistanceWeighted(a, b, &strdist.Options{SubstitutionWeight: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, d, "substitution priced like delete+insert")

	_, err = strdist.DistanceWeighted(a, b, &strdist.Options{SubstitutionWeight: 3})
	assert.ErrorIs(t, err, strdist.ErrBadSubstitutionWeight)
	_, err = strdist.DistanceWeighted(a, b, &strdist.Options{})
	assert.ErrorIs(t, err, strdist.ErrBadSubstitutionWeight, "zero weight must be rejected")
}

// TestRatio_Fixtures pins the reference similarity and the degenerate cases.
func TestRatio_Fixtures(t *testing.T) {
	got := strdist.Ratio(symbols.Bytes("Hello world!"), symbols.Bytes("Holly grail!"))
	assert.InDelta(t, 0.5833, got, 1e-4)

	assert.Equal(t, 1.0, strdist.Ratio(symbols.Bytes(""), symbols.Bytes("")))
	assert.Equal(t, 0.0, strdist.Ratio(symbols.Bytes("ab"), symbols.Bytes("")))
}

// TestRatio_Bounds verifies Ratio(a,b) ∈ [0,1] and Ratio(a,a) = 1.
func TestRatio_Bounds(t *testing.T) {
	for _, a := range words {
		sa := symbols.Bytes(a)
		assert.Equal(t, 1.0, strdist.Ratio(sa, sa), "Ratio(%q, %q)", a, a)
		for _, b := range words {
			r := strdist.Ratio(sa, symbols.Bytes(b))
			assert.GreaterOrEqual(t, r, 0.0, "Ratio(%q, %q)", a, b)
			assert.LessOrEqual(t, r, 1.0, "Ratio(%q, %q)", a, b)
		}
	}
}

// TestHamming covers the reference fixture and the length-mismatch error.
func TestHamming(t *testing.T) {
	d, err := strdist.Hamming(symbols.Bytes("Hello world!"), symbols.Bytes("Holly grail!"))
	require.NoError(t, err)
	assert.Equal(t, 7, d)

	d, err = strdist.Hamming(symbols.Bytes(""), symbols.Bytes(""))
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = strdist.Hamming(symbols.Bytes("abc"), symbols.Bytes("ab"))
	assert.ErrorIs(t, err, strdist.ErrLengthMismatch)
}

// TestJaro pins reference similarities, including the zero-match case.
func TestJaro(t *testing.T) {
	assert.Equal(t, 0.0, strdist.Jaro(symbols.Bytes("Brian"), symbols.Bytes("Jesus")),
		"no common symbols")
	assert.Equal(t, 1.0, strdist.Jaro(symbols.Bytes("spam"), symbols.Bytes("spam")))
	assert.Equal(t, 1.0, strdist.Jaro(symbols.Bytes(""), symbols.Bytes("")))
	assert.Equal(t, 0.0, strdist.Jaro(symbols.Bytes("spam"), symbols.Bytes("")))
	assert.InDelta(t, 0.70833, strdist.Jaro(symbols.Bytes("Dinsdale"), symbols.Bytes("D")), 1e-5)
}

// TestJaroWinkler pins the reference fixture and verifies the prefix
// weight validation.
func TestJaroWinkler(t *testing.T) {
	jw, err := strdist.JaroWinkler(symbols.Bytes("Dinsdale"), symbols.Bytes("D"), strdist.DefaultPrefixWeight)
	require.NoError(t, err)
	assert.InDelta(t, 0.7375, jw, 1e-4)

	jw, err = strdist.JaroWinkler(symbols.Bytes("spam"), symbols.Bytes("spam"), strdist.DefaultPrefixWeight)
	require.NoError(t, err)
	assert.Equal(t, 1.0, jw)

	// Weight 0 degrades to plain Jaro.
	jw, err = strdist.JaroWinkler(symbols.Bytes("Dinsdale"), symbols.Bytes("D"), 0)
	require.NoError(t, err)
	assert.Equal(t, strdist.Jaro(symbols.Bytes("Dinsdale"), symbols.Bytes("D")), jw)

	_, err = strdist.JaroWinkler(symbols.Bytes("a"), symbols.Bytes("b"), -0.1)
	assert.ErrorIs(t, err, strdist.ErrNegativePrefixWeight)
}
