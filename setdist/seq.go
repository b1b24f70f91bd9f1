package setdist

import "github.com/oskaritimperi/leven/strdist"

// tokenCost prices substituting token x for token y: 0 for identical
// tokens, 2 for maximally dissimilar ones, matching the weight-2 atomic
// substitution pricing used by strdist.Ratio.
func tokenCost[T comparable](x, y []T) float64 {
	return 2 * (1 - strdist.Ratio(x, y))
}

// SeqDistance computes the order-sensitive double edit distance between
// two token sequences: a Levenshtein dynamic program where every token
// insert/delete costs 1 and a token substitution costs tokenCost.
//
// Complexity: O(len(a)·len(b)) token-pair pricings, O(min side) memory
// for the rolling row.
func SeqDistance[T comparable](a, b [][]T) float64 {
	if len(a) == 0 {
		return float64(len(b))
	}
	if len(b) == 0 {
		return float64(len(a))
	}

	row := make([]float64, len(a)+1)
	for i := range row {
		row[i] = float64(i)
	}
	for j := 1; j <= len(b); j++ {
		prevDiag := row[0]
		row[0] = float64(j)
		for i := 1; i <= len(a); i++ {
			old := row[i]
			best := prevDiag + tokenCost(a[i-1], b[j-1])
			if d := row[i-1] + 1; d < best {
				best = d
			}
			if d := old + 1; d < best {
				best = d
			}
			row[i] = best
			prevDiag = old
		}
	}

	return row[len(a)]
}

// SeqRatio normalizes SeqDistance into a similarity in [0, 1]: 1.0 for
// two empty collections, 0.0 when exactly one is empty, otherwise
// (len(a)+len(b)-SeqDistance(a,b)) / (len(a)+len(b)).
func SeqRatio[T comparable](a, b [][]T) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	return (float64(total) - SeqDistance(a, b)) / float64(total)
}
