package median

import (
	"cmp"
	"math"
	"slices"

	"github.com/oskaritimperi/leven/strdist"
)

// SetMedian returns the input string minimizing the weighted sum of
// Levenshtein distances to all of strs — a member of the input set, in
// contrast to the synthesized result of Median. Ties resolve to the
// earliest index.
//
// Errors: ErrWeightMismatch, ErrNegativeWeight.
//
// Complexity: O(n²) distance computations over the full pairwise matrix.
func SetMedian[T cmp.Ordered](strs [][]T, weights []float64) ([]T, error) {
	w, err := applyWeights(len(strs), weights)
	if err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return []T{}, nil
	}

	n := len(strs)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := strdist.Distance(strs[i], strs[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	best := 0
	bestSOD := math.Inf(1)
	for i := 0; i < n; i++ {
		var sod float64
		for j := 0; j < n; j++ {
			sod += float64(dist[i][j]) * w[j]
		}
		if sod < bestSOD {
			bestSOD = sod
			best = i
		}
	}

	return slices.Clone(strs[best]), nil
}
