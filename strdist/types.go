package strdist

import "errors"

var (
	// ErrBadSubstitutionWeight indicates an Options.SubstitutionWeight
	// outside the supported set {1, 2}.
	ErrBadSubstitutionWeight = errors.New("strdist: substitution weight must be 1 or 2")

	// ErrLengthMismatch indicates Hamming was called on sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("strdist: sequences differ in length")

	// ErrNegativePrefixWeight indicates JaroWinkler was called with a
	// negative prefix weight.
	ErrNegativePrefixWeight = errors.New("strdist: prefix weight must be non-negative")
)

// DefaultPrefixWeight is the standard Winkler prefix scaling factor.
const DefaultPrefixWeight = 0.1

// Options configures the Levenshtein dynamic program.
//
// Fields:
//   - SubstitutionWeight — cost of replacing one symbol with another;
//     must be 1 (classic distance) or 2 (substitution priced like a
//     delete+insert pair, the weighting Ratio builds on).
type Options struct {
	SubstitutionWeight int
}

// DefaultOptions returns the canonical configuration: unit substitutions.
func DefaultOptions() Options {
	return Options{SubstitutionWeight: 1}
}
