package setdist

import "math"

// assign solves the n×n minimum-cost assignment problem over cost and
// returns the total cost of an optimal one-to-one pairing.
//
// The implementation is the potentials + shortest-augmenting-path form
// of the Hungarian algorithm: rows are inserted one at a time, each
// insertion growing the matching along the cheapest augmenting path
// found by a Dijkstra-style scan over reduced costs. Indices are
// 1-based internally with column 0 as the virtual root of each path.
//
// Complexity: O(n³) time, O(n²) memory (the caller-owned cost matrix).
func assign(cost [][]float64, n int) float64 {
	inf := math.Inf(1)

	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	match := make([]int, n+1) // match[j] = row currently assigned to column j
	way := make([]int, n+1)   // way[j] = previous column on the augmenting path

	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		for j := 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the shortest augmenting path until a free column appears.
		for {
			used[j0] = true
			i0 := match[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				reduced := cost[i0-1][j-1] - u[i0] - v[j]
				if reduced < minv[j] {
					minv[j] = reduced
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}

		// Unwind the path, flipping assignments along it.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	var total float64
	for j := 1; j <= n; j++ {
		total += cost[match[j]-1][j-1]
	}

	return total
}
