package editop

import "fmt"

// Subtract removes an already-applied sub-edit from a full edit. sub
// must be an ordered sub-selection of ops; the result is the op sequence
// that, applied to the output of applying sub, reaches the same final
// string as applying all of ops:
//
//	Apply(Subtract(ops, sub), Apply(sub, a, b), b) == Apply(ops, a, b)
//
// The remaining ops are re-indexed directly rather than realigned: each
// subtracted Insert grows the intermediate source by one symbol and each
// subtracted Delete shrinks it, so source positions of the ops that
// follow shift by the running net difference. Destination positions
// still refer to b and are unchanged.
//
// Errors: ErrInvalidEditOps when either sequence is malformed or sub is
// not a sub-selection of ops.
//
// Complexity: O(#ops).
func Subtract(ops, sub []EditOp) ([]EditOp, error) {
	if k := checkKindsAndOrder(ops); k != OK {
		return nil, k.Err()
	}
	if k := checkKindsAndOrder(sub); k != OK {
		return nil, k.Err()
	}

	rem := make([]EditOp, 0, len(ops))
	j, shift := 0, 0
	for _, o := range ops {
		if j < len(sub) && sub[j] == o {
			switch o.Kind {
			case Insert:
				shift++
			case Delete:
				shift--
			}
			j++

			continue
		}
		o.SrcPos += shift
		rem = append(rem, o)
	}
	if j != len(sub) {
		return nil, fmt.Errorf("%w: not a sub-selection of the full edit", ErrInvalidEditOps)
	}

	return rem, nil
}
