package median

import (
	"cmp"
	"math"
	"slices"
)

// Median computes the greedy generalized median of strs: a consensus
// string approximately minimizing the weighted sum of Levenshtein
// distances (SOD) to the inputs. The result is generally not a member of
// the input set.
//
// Algorithm Outline:
//  1. Keep one Levenshtein row per input string, the row of the empty
//     candidate to begin with.
//  2. Grow the candidate one symbol at a time, up to 2·maxlen symbols.
//     For every symbol of the joint alphabet, compute what the next row
//     would look like per string and score the symbol by the weighted
//     sum of the row minima — the distance to each string's
//     best-matching prefix. Append the best-scoring symbol and commit
//     its rows.
//  3. While growing, record the exact weighted SOD of every candidate
//     prefix; the answer is the prefix with the smallest SOD.
//
// Ties between symbols resolve to the smaller symbol, ties between
// prefix lengths to the shorter prefix, so the result is deterministic.
//
// Degenerate inputs: an empty strs (or all-empty strings) yields the
// empty string.
//
// Errors: ErrWeightMismatch, ErrNegativeWeight.
//
// Complexity: O(Σ len(sᵢ) · |median| · |Σ|) time, O(Σ len(sᵢ)) memory.
func Median[T cmp.Ordered](strs [][]T, weights []float64) ([]T, error) {
	w, err := applyWeights(len(strs), weights)
	if err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return []T{}, nil
	}
	syms := symbolList(strs)
	if len(syms) == 0 {
		return []T{}, nil
	}

	maxLen := 0
	for _, s := range strs {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	stopLen := 2*maxLen + 1

	// One rolling Levenshtein row per string, plus a shared scratch row.
	rows := make([][]int, len(strs))
	for i, s := range strs {
		rows[i] = make([]int, len(s)+1)
		for j := range rows[i] {
			rows[i][j] = j
		}
	}
	scratch := make([]int, maxLen+1)

	med := make([]T, stopLen)
	// dist[l] is the exact weighted SOD of the candidate prefix of
	// length l; dist[0] covers the empty candidate.
	dist := make([]float64, stopLen+1)
	for i, s := range strs {
		dist[0] += float64(len(s)) * w[i]
	}

	for l := 1; l <= stopLen; l++ {
		var best T
		bestDist := 0.0
		minMinSum := math.Inf(1)
		for _, sym := range syms {
			var minSum, totalDist float64
			for i, s := range strs {
				row := rows[i]
				minv, x := l, l
				for k := 0; k < len(s); k++ {
					d := row[k]
					if sym != s[k] {
						d++
					}
					x++
					if x > d {
						x = d
					}
					if next := row[k+1] + 1; x > next {
						x = next
					}
					if x < minv {
						minv = x
					}
				}
				minSum += float64(minv) * w[i]
				totalDist += float64(x) * w[i]
			}
			if minSum < minMinSum {
				minMinSum = minSum
				bestDist = totalDist
				best = sym
			}
		}
		med[l-1] = best
		dist[l] = bestDist

		// Commit the rows for the chosen symbol only.
		scratch[0] = l
		for i, s := range strs {
			old := rows[i]
			for k := 1; k <= len(s); k++ {
				sub := old[k-1]
				if best != s[k-1] {
					sub++
				}
				scratch[k] = min3(old[k]+1, scratch[k-1]+1, sub)
			}
			copy(old, scratch[:len(s)+1])
		}
	}

	bestLen := 0
	for l := 1; l <= stopLen; l++ {
		if dist[l] < dist[bestLen] {
			bestLen = l
		}
	}

	return slices.Clone(med[:bestLen]), nil
}
