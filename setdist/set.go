package setdist

// SetDistance computes the order-independent distance between two token
// collections: the minimum total cost of a one-to-one pairing under the
// same token-pair pricing as SeqDistance. The complete cost matrix over
// all (aᵢ, bⱼ) pairs is built, the smaller side padded with dummy
// tokens priced 1 — one unmatched insert or delete each — and the
// assignment solved by the Hungarian algorithm.
//
// Complexity: O(len(a)·len(b)) pricings plus O(n³) assignment,
// n = max(len(a), len(b)).
func SetDistance[T comparable](a, b [][]T) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			if i < len(a) && j < len(b) {
				cost[i][j] = tokenCost(a[i], b[j])
			} else {
				// dummy pairing: an unmatched insert or delete
				cost[i][j] = 1
			}
		}
	}

	return assign(cost, n)
}

// SetRatio normalizes SetDistance into a similarity in [0, 1] with the
// same empty-handling and formula as SeqRatio. Reordering tokens never
// lowers SetRatio below the SeqRatio of the same collections.
func SetRatio[T comparable](a, b [][]T) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	return (float64(total) - SetDistance(a, b)) / float64(total)
}
