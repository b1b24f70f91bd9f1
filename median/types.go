package median

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

var (
	// ErrWeightMismatch indicates len(weights) != len(strings).
	ErrWeightMismatch = errors.New("median: strings and weights differ in length")

	// ErrNegativeWeight indicates a weight that is negative or NaN.
	ErrNegativeWeight = errors.New("median: weights must be non-negative")
)

// applyWeights validates weights against n strings. A nil slice defaults
// to uniform weight 1.0 per string.
func applyWeights(n int, weights []float64) ([]float64, error) {
	if weights == nil {
		w := make([]float64, n)
		for i := range w {
			w[i] = 1.0
		}

		return w, nil
	}
	if len(weights) != n {
		return nil, ErrWeightMismatch
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, ErrNegativeWeight
		}
	}

	return weights, nil
}

// symbolList returns the distinct symbols occurring anywhere in strs,
// in ascending order. The canonical order keeps every tie-break
// deterministic.
func symbolList[T cmp.Ordered](strs [][]T) []T {
	seen := make(map[T]struct{})
	var syms []T
	for _, s := range strs {
		for _, c := range s {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				syms = append(syms, c)
			}
		}
	}
	slices.Sort(syms)

	return syms
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}
