package editop

// Check validates an atomic op sequence against source length len1 and
// destination length len2.
//
// Rules:
//   - every Kind is one of Keep/Replace/Insert/Delete;
//   - positions stay inside [0,len1]×[0,len2]; SrcPos==len1 is only legal
//     for Insert, DstPos==len2 only for Delete;
//   - both position columns are non-decreasing.
//
// Complexity: O(#ops).
func Check(len1, len2 int, ops []EditOp) ErrorKind {
	for _, o := range ops {
		if o.Kind >= numKinds {
			return BadKind
		}
		if o.SrcPos < 0 || o.DstPos < 0 || o.SrcPos > len1 || o.DstPos > len2 {
			return OutOfBounds
		}
		if o.SrcPos == len1 && o.Kind != Insert {
			return OutOfBounds
		}
		if o.DstPos == len2 && o.Kind != Delete {
			return OutOfBounds
		}
	}
	for i := 1; i < len(ops); i++ {
		if ops[i].SrcPos < ops[i-1].SrcPos || ops[i].DstPos < ops[i-1].DstPos {
			return NotOrdered
		}
	}

	return OK
}

// CheckOpCodes validates a block op sequence against source length len1
// and destination length len2.
//
// Rules:
//   - the blocks cover exactly [0,len1)×[0,len2): first begins at (0,0),
//     last ends at (len1,len2), each block begins where its predecessor
//     ended;
//   - ranges are well-formed and in bounds;
//   - Keep blocks span equal, non-zero lengths; Replace spans are
//     non-empty on both sides (they need not be equal); Insert is empty
//     on the source side only, Delete on the destination side only.
//
// An empty sequence is valid and describes the empty edit of two empty
// sequences; with non-zero lengths it fails as IncompleteSpan.
//
// Complexity: O(#blocks).
func CheckOpCodes(len1, len2 int, bops []OpCode) ErrorKind {
	if len(bops) == 0 {
		if len1 == 0 && len2 == 0 {
			return OK
		}

		return IncompleteSpan
	}

	first, last := bops[0], bops[len(bops)-1]
	if first.SrcBegin != 0 || first.DstBegin != 0 || last.SrcEnd != len1 || last.DstEnd != len2 {
		return IncompleteSpan
	}

	for i, b := range bops {
		if b.Kind >= numKinds {
			return BadKind
		}
		if b.SrcBegin < 0 || b.DstBegin < 0 || b.SrcEnd > len1 || b.DstEnd > len2 {
			return OutOfBounds
		}
		if b.SrcBegin > b.SrcEnd || b.DstBegin > b.DstEnd {
			return NotOrdered
		}
		if i > 0 && (b.SrcBegin != bops[i-1].SrcEnd || b.DstBegin != bops[i-1].DstEnd) {
			return BadBlockBoundary
		}

		slen, dlen := b.SrcEnd-b.SrcBegin, b.DstEnd-b.DstBegin
		switch b.Kind {
		case Keep:
			if slen != dlen || slen == 0 {
				return BadBlockBoundary
			}
		case Replace:
			if slen == 0 || dlen == 0 {
				return BadBlockBoundary
			}
		case Insert:
			if slen != 0 || dlen == 0 {
				return BadBlockBoundary
			}
		case Delete:
			if slen == 0 || dlen != 0 {
				return BadBlockBoundary
			}
		}
	}

	return OK
}

// checkKindsAndOrder is the length-free subset of Check used by
// operations that have no sequence lengths at hand (Invert, Subtract).
func checkKindsAndOrder(ops []EditOp) ErrorKind {
	for _, o := range ops {
		if o.Kind >= numKinds {
			return BadKind
		}
		if o.SrcPos < 0 || o.DstPos < 0 {
			return OutOfBounds
		}
	}
	for i := 1; i < len(ops); i++ {
		if ops[i].SrcPos < ops[i-1].SrcPos || ops[i].DstPos < ops[i-1].DstPos {
			return NotOrdered
		}
	}

	return OK
}
