package editop

// Invert swaps the roles of source and destination: Insert becomes
// Delete and vice versa, and positions trade places. The result is a
// valid edit from the old destination back to the old source, so
// applying Invert(Find(a,b)) to (b,a) reproduces a.
//
// Errors: ErrInvalidEditOps on unknown kinds, negative positions or a
// non-ordered sequence (span bounds need the sequence lengths and are
// checked by the consuming operation instead).
//
// Complexity: O(#ops).
func Invert(ops []EditOp) ([]EditOp, error) {
	if k := checkKindsAndOrder(ops); k != OK {
		return nil, k.Err()
	}

	inv := make([]EditOp, len(ops))
	for i, o := range ops {
		kind := o.Kind
		switch kind {
		case Insert:
			kind = Delete
		case Delete:
			kind = Insert
		}
		inv[i] = EditOp{Kind: kind, SrcPos: o.DstPos, DstPos: o.SrcPos}
	}

	return inv, nil
}

// InvertOpCodes swaps the roles of source and destination in a block op
// sequence. The result is valid against the swapped lengths
// (len2, len1).
//
// Errors: ErrInvalidEditOps when CheckOpCodes(len1, len2, bops) fails.
//
// Complexity: O(#blocks).
func InvertOpCodes(bops []OpCode, len1, len2 int) ([]OpCode, error) {
	if k := CheckOpCodes(len1, len2, bops); k != OK {
		return nil, k.Err()
	}

	inv := make([]OpCode, len(bops))
	for i, b := range bops {
		kind := b.Kind
		switch kind {
		case Insert:
			kind = Delete
		case Delete:
			kind = Insert
		}
		inv[i] = OpCode{Kind: kind, SrcBegin: b.DstBegin, SrcEnd: b.DstEnd, DstBegin: b.SrcBegin, DstEnd: b.SrcEnd}
	}

	return inv, nil
}
