package editop

// Apply replays an atomic op sequence onto source a, drawing inserted
// and substituted symbols from destination b. Untouched stretches of a
// are copied verbatim.
//
// ops may be any ordered sub-selection of a full edit: an empty or
// partial op list yields a partial edit of a, not necessarily equal
// to b. Applying the full output of Find(a, b) yields exactly b.
//
// Errors: ErrInvalidEditOps when Check(len(a), len(b), ops) fails.
//
// Complexity: O(len(a) + len(b)).
func Apply[T comparable](ops []EditOp, a, b []T) ([]T, error) {
	if k := Check(len(a), len(b), ops); k != OK {
		return nil, k.Err()
	}

	out := make([]T, 0, len(b))
	spos := 0
	for _, o := range ops {
		// Copy the untouched stretch up to this op.
		if o.SrcPos > spos {
			out = append(out, a[spos:o.SrcPos]...)
			spos = o.SrcPos
		}
		switch o.Kind {
		case Delete:
			spos++
		case Insert:
			out = append(out, b[o.DstPos])
		case Replace:
			out = append(out, b[o.DstPos])
			spos++
		}
	}
	out = append(out, a[spos:]...)

	return out, nil
}

// ApplyOpCodes replays a block op sequence onto source a, drawing
// destination spans from b. Unlike Apply, the block form always
// describes a complete edit, so the result equals the full destination
// the blocks were derived from.
//
// Errors: ErrInvalidEditOps when CheckOpCodes(len(a), len(b), bops) fails.
//
// Complexity: O(len(a) + len(b)).
func ApplyOpCodes[T comparable](bops []OpCode, a, b []T) ([]T, error) {
	if k := CheckOpCodes(len(a), len(b), bops); k != OK {
		return nil, k.Err()
	}

	out := make([]T, 0, len(b))
	for _, blk := range bops {
		switch blk.Kind {
		case Keep:
			out = append(out, a[blk.SrcBegin:blk.SrcEnd]...)
		case Replace, Insert:
			out = append(out, b[blk.DstBegin:blk.DstEnd]...)
		case Delete:
			// source span dropped
		}
	}

	return out, nil
}
