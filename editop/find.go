package editop

// Find computes one canonical optimal alignment of a and b as an
// ordered, normalized EditOp sequence (no Keep entries): run the
// unit-cost Levenshtein dynamic program over the full matrix, then
// backtrace from (len(a),len(b)) to (0,0).
//
// At cells where several predecessor moves are equally cheap, the
// backtrace applies a fixed preference order: continue the insert or
// delete run it is currently in, otherwise keep (equal symbols across an
// equal-cost diagonal), then replace, then insert, then delete. The same
// inputs therefore always produce the same alignment.
//
// Complexity: O(len(a)·len(b)) time and memory.
func Find[T comparable](a, b []T) []EditOp {
	len1, len2 := len(a), len(b)
	width := len2 + 1

	// Full cost matrix, flattened row-major; the backtrace needs all of it.
	m := make([]int, (len1+1)*width)
	for j := 0; j <= len2; j++ {
		m[j] = j
	}
	for i := 1; i <= len1; i++ {
		row := m[i*width:]
		prev := m[(i-1)*width:]
		row[0] = i
		for j := 1; j <= len2; j++ {
			cost := prev[j-1]
			if a[i-1] != b[j-1] {
				cost++
			}
			if d := prev[j] + 1; d < cost {
				cost = d
			}
			if d := row[j-1] + 1; d < cost {
				cost = d
			}
			row[j] = cost
		}
	}

	// Backtrace; ops come out back-to-front.
	ops := make([]EditOp, 0, m[len1*width+len2])
	i, j := len1, len2
	dir := 0 // <0 inside an insert run, >0 inside a delete run
	for i > 0 || j > 0 {
		cur := m[i*width+j]
		switch {
		case dir < 0 && j > 0 && cur == m[i*width+j-1]+1:
			j--
			ops = append(ops, EditOp{Kind: Insert, SrcPos: i, DstPos: j})
		case dir > 0 && i > 0 && cur == m[(i-1)*width+j]+1:
			i--
			ops = append(ops, EditOp{Kind: Delete, SrcPos: i, DstPos: j})
		case i > 0 && j > 0 && cur == m[(i-1)*width+j-1] && a[i-1] == b[j-1]:
			// Keep runs are not emitted: Find returns normalized ops.
			i--
			j--
			dir = 0
		case i > 0 && j > 0 && cur == m[(i-1)*width+j-1]+1:
			i--
			j--
			ops = append(ops, EditOp{Kind: Replace, SrcPos: i, DstPos: j})
			dir = 0
		case j > 0 && cur == m[i*width+j-1]+1:
			j--
			ops = append(ops, EditOp{Kind: Insert, SrcPos: i, DstPos: j})
			dir = -1
		case i > 0 && cur == m[(i-1)*width+j]+1:
			i--
			ops = append(ops, EditOp{Kind: Delete, SrcPos: i, DstPos: j})
			dir = 1
		default:
			// Unreachable on a well-formed cost matrix.
			panic("editop: backtrace lost its way")
		}
	}

	// Reverse into forward order.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}
