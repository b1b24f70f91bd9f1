package strdist

// Jaro returns the Jaro similarity of a and b in [0, 1].
//
// Symbols a[i] and b[j] match when they are equal, each side is matched
// at most once, and |i-j| stays within the search window
// max(⌊max(len(a),len(b))/2⌋-1, 0). With m matches and t transpositions
// among the matched pairs taken in order:
//
//	jaro = (m/len(a) + m/len(b) + (m - t/2)/m) / 3
//
// Two empty sequences are identical (1.0); zero matches otherwise yield 0.
//
// Complexity: O(len(a)·window) time, O(len(a)+len(b)) memory.
func Jaro[T comparable](a, b []T) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	window := maxInt(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(a))
	bMatched := make([]bool, len(b))
	matches := 0
	for i := range a {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(b) {
			hi = len(b)
		}
		for j := lo; j < hi; j++ {
			if !bMatched[j] && a[i] == b[j] {
				aMatched[i] = true
				bMatched[j] = true
				matches++

				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Count transpositions: matched symbols compared in order of
	// appearance on each side.
	transposed := 0
	j := 0
	for i := range a {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if a[i] != b[j] {
			transposed++
		}
		j++
	}

	m := float64(matches)
	t := float64(transposed) / 2

	return (m/float64(len(a)) + m/float64(len(b)) + (m-t)/m) / 3
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b: the Jaro
// similarity boosted by the length of the common prefix (capped at 4):
//
//	jw = jaro + l·prefixWeight·(1 - jaro)
//
// DefaultPrefixWeight (0.1) is the standard factor.
//
// Errors: ErrNegativePrefixWeight when prefixWeight < 0.
func JaroWinkler[T comparable](a, b []T, prefixWeight float64) (float64, error) {
	if prefixWeight < 0 {
		return 0, ErrNegativePrefixWeight
	}

	j := Jaro(a, b)

	prefix := 0
	for prefix < len(a) && prefix < len(b) && prefix < 4 && a[prefix] == b[prefix] {
		prefix++
	}

	return j + float64(prefix)*prefixWeight*(1-j), nil
}

// maxInt returns the maximum of two int values.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
