package median

import (
	"cmp"
	"math"
)

// QuickMedian computes a cheap single-pass approximation of the
// generalized median. The output length is the weighted mean input
// length (rounded); each output position then collects weighted votes
// from the corresponding fractional window of every input string —
// overlap-proportional, so a symbol covering half the window casts half
// a vote — and the highest-voted symbol wins, smaller symbol on ties.
//
// No re-alignment against a growing candidate takes place, which makes
// QuickMedian much faster than Median but lower fidelity: in quality it
// sits between SetMedian and picking an input string at random.
//
// Errors: ErrWeightMismatch, ErrNegativeWeight.
//
// Complexity: O(Σ len(sᵢ)) time, O(|Σ|) memory.
func QuickMedian[T cmp.Ordered](strs [][]T, weights []float64) ([]T, error) {
	w, err := applyWeights(len(strs), weights)
	if err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return []T{}, nil
	}

	var totalWeight, weightedLen float64
	for i, s := range strs {
		weightedLen += float64(len(s)) * w[i]
		totalWeight += w[i]
	}
	if totalWeight == 0 {
		return []T{}, nil
	}
	target := int(math.Floor(weightedLen/totalWeight + 0.499999))
	if target == 0 {
		return []T{}, nil
	}

	syms := symbolList(strs)
	index := make(map[T]int, len(syms))
	for i, sym := range syms {
		index[sym] = i
	}
	votes := make([]float64, len(syms))

	out := make([]T, 0, target)
	for j := 0; j < target; j++ {
		for i := range votes {
			votes[i] = 0
		}
		for i, s := range strs {
			if len(s) == 0 || w[i] == 0 {
				continue
			}
			// The window of s backing output slot j, in source units.
			scale := float64(len(s)) / float64(target)
			start := float64(j) * scale
			end := start + scale
			kStart := int(start)
			kEnd := int(math.Ceil(end))
			if kEnd > len(s) {
				// rounding drift must not overrun the string
				kEnd = len(s)
			}
			for k := kStart; k < kEnd; k++ {
				lo := math.Max(float64(k), start)
				hi := math.Min(float64(k+1), end)
				if hi > lo {
					votes[index[s[k]]] += w[i] * (hi - lo)
				}
			}
		}
		best := 0
		for i := 1; i < len(votes); i++ {
			if votes[i] > votes[best] {
				best = i
			}
		}
		out = append(out, syms[best])
	}

	return out, nil
}
