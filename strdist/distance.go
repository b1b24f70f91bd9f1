package strdist

// Distance returns the classic unit-cost Levenshtein distance between a
// and b: the minimum number of single-symbol insertions, deletions and
// substitutions transforming a into b.
//
// Complexity: O(len(a)·len(b)) time, O(min(len(a),len(b))) memory.
func Distance[T comparable](a, b []T) int {
	d, _ := DistanceWeighted(a, b, nil)
	return d
}

// DistanceWeighted returns the Levenshtein distance between a and b under
// opts. A nil opts means DefaultOptions. SubstitutionWeight=2 prices a
// substitution like a delete+insert pair.
//
// Errors: ErrBadSubstitutionWeight when the weight is outside {1, 2}.
func DistanceWeighted[T comparable](a, b []T, opts *Options) (int, error) {
	subst := 1
	if opts != nil {
		subst = opts.SubstitutionWeight
	}
	if subst != 1 && subst != 2 {
		return 0, ErrBadSubstitutionWeight
	}

	// Shared prefixes and suffixes never contribute to the distance.
	a, b = stripCommon(a, b)

	// Keep a the shorter side; its length determines the buffer size.
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b), nil
	}

	// Wagner-Fischer with a single rolling row.
	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(b); j++ {
		prevDiag := row[0]
		row[0] = j
		for i := 1; i <= len(a); i++ {
			old := row[i]
			if a[i-1] == b[j-1] {
				row[i] = prevDiag
			} else {
				row[i] = min3(prevDiag+subst, row[i-1]+1, old+1)
			}
			prevDiag = old
		}
	}

	return row[len(a)], nil
}

// Ratio returns the normalized similarity of a and b in [0, 1]:
// (len(a)+len(b) - DistanceWeighted(a,b,weight=2)) / (len(a)+len(b)),
// with 1.0 for two empty sequences.
func Ratio[T comparable](a, b []T) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	d, _ := DistanceWeighted(a, b, &Options{SubstitutionWeight: 2})

	return float64(total-d) / float64(total)
}

// Hamming returns the number of positions at which a and b differ.
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func Hamming[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var dist int
	for i := range a {
		if a[i] != b[i] {
			dist++
		}
	}

	return dist, nil
}

// stripCommon removes the longest common prefix and suffix of a and b.
func stripCommon[T comparable](a, b []T) ([]T, []T) {
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}

	return a, b
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
