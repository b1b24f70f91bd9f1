package median

import (
	"cmp"
	"slices"

	"github.com/oskaritimperi/leven/strdist"
)

// Improve performs exactly one local-search step on candidate: for every
// position it evaluates deleting the symbol, substituting it with every
// symbol observed anywhere in strs, and inserting every observed symbol
// at every gap (including both ends), scoring each perturbation by the
// weighted sum of Levenshtein distances to strs. The best strictly
// improving perturbation wins; if none improves, the candidate comes
// back unchanged. The SOD therefore never increases.
//
// Ties resolve by scan order — deletions, then substitutions, then
// insertions, positions ascending, symbols ascending — so the result is
// deterministic. Callers wanting further improvement re-invoke Improve
// until it returns its input.
//
// Errors: ErrWeightMismatch, ErrNegativeWeight.
//
// Complexity: ≈ O(|candidate| · |Σ| · Σ len(sᵢ) · |candidate|) time.
func Improve[T cmp.Ordered](candidate []T, strs [][]T, weights []float64) ([]T, error) {
	w, err := applyWeights(len(strs), weights)
	if err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return slices.Clone(candidate), nil
	}

	sod := func(c []T) float64 {
		var total float64
		for i, s := range strs {
			if w[i] != 0 {
				total += float64(strdist.Distance(c, s)) * w[i]
			}
		}

		return total
	}

	best := candidate
	bestSOD := sod(candidate)
	consider := func(c []T) {
		if s := sod(c); s < bestSOD {
			bestSOD = s
			best = c
		}
	}

	// Deletions.
	for p := range candidate {
		c := make([]T, 0, len(candidate)-1)
		c = append(c, candidate[:p]...)
		c = append(c, candidate[p+1:]...)
		consider(c)
	}

	syms := symbolList(strs)

	// Substitutions.
	for p := range candidate {
		for _, sym := range syms {
			if sym == candidate[p] {
				continue
			}
			c := slices.Clone(candidate)
			c[p] = sym
			consider(c)
		}
	}

	// Insertions.
	for p := 0; p <= len(candidate); p++ {
		for _, sym := range syms {
			c := make([]T, 0, len(candidate)+1)
			c = append(c, candidate[:p]...)
			c = append(c, sym)
			c = append(c, candidate[p:]...)
			consider(c)
		}
	}

	return slices.Clone(best), nil
}
