package editop

// ToOpCodes converts an atomic op sequence into the equivalent block
// form, inserting Keep blocks into every gap so the result exactly
// partitions [0,len1)×[0,len2). Consecutive atomic ops of one kind at
// adjacent positions collapse into a single block.
//
// Errors: ErrInvalidEditOps when Check(len1, len2, ops) fails.
//
// Complexity: O(#ops).
func ToOpCodes(ops []EditOp, len1, len2 int) ([]OpCode, error) {
	if k := Check(len1, len2, ops); k != OK {
		return nil, k.Err()
	}

	var bops []OpCode
	spos, dpos := 0, 0
	for i := 0; i < len(ops); {
		if ops[i].Kind == Keep {
			i++

			continue
		}

		// Untouched run before this op becomes a Keep block.
		if spos < ops[i].SrcPos || dpos < ops[i].DstPos {
			bops = append(bops, OpCode{Kind: Keep, SrcBegin: spos, SrcEnd: ops[i].SrcPos, DstBegin: dpos, DstEnd: ops[i].DstPos})
			spos, dpos = ops[i].SrcPos, ops[i].DstPos
		}

		// Collapse the run of identical-kind ops at adjacent positions.
		kind := ops[i].Kind
		sb, db := spos, dpos
		for i < len(ops) && ops[i].Kind == kind && ops[i].SrcPos == spos && ops[i].DstPos == dpos {
			switch kind {
			case Replace:
				spos++
				dpos++
			case Insert:
				dpos++
			case Delete:
				spos++
			}
			i++
		}
		bops = append(bops, OpCode{Kind: kind, SrcBegin: sb, SrcEnd: spos, DstBegin: db, DstEnd: dpos})
	}
	if spos < len1 || dpos < len2 {
		bops = append(bops, OpCode{Kind: Keep, SrcBegin: spos, SrcEnd: len1, DstBegin: dpos, DstEnd: len2})
	}

	return bops, nil
}

// ToEditOps expands a block op sequence into atomic ops, one per
// differing position. Keep blocks expand into atomic Keep ops when
// keepKeep is true and are dropped otherwise, which yields the
// normalized form. Replace blocks with unequal spans expand into
// pairwise Replace ops over the shorter span followed by Insert or
// Delete ops for the overhang.
//
// Errors: ErrInvalidEditOps when CheckOpCodes(len1, len2, bops) fails.
//
// Complexity: O(total block length).
func ToEditOps(bops []OpCode, len1, len2 int, keepKeep bool) ([]EditOp, error) {
	if k := CheckOpCodes(len1, len2, bops); k != OK {
		return nil, k.Err()
	}

	var ops []EditOp
	for _, b := range bops {
		switch b.Kind {
		case Keep:
			if !keepKeep {
				continue
			}
			for o := 0; o < b.SrcEnd-b.SrcBegin; o++ {
				ops = append(ops, EditOp{Kind: Keep, SrcPos: b.SrcBegin + o, DstPos: b.DstBegin + o})
			}
		case Replace:
			slen, dlen := b.SrcEnd-b.SrcBegin, b.DstEnd-b.DstBegin
			common := slen
			if dlen < common {
				common = dlen
			}
			for o := 0; o < common; o++ {
				ops = append(ops, EditOp{Kind: Replace, SrcPos: b.SrcBegin + o, DstPos: b.DstBegin + o})
			}
			for o := common; o < dlen; o++ {
				ops = append(ops, EditOp{Kind: Insert, SrcPos: b.SrcEnd, DstPos: b.DstBegin + o})
			}
			for o := common; o < slen; o++ {
				ops = append(ops, EditOp{Kind: Delete, SrcPos: b.SrcBegin + o, DstPos: b.DstEnd})
			}
		case Insert:
			for o := 0; o < b.DstEnd-b.DstBegin; o++ {
				ops = append(ops, EditOp{Kind: Insert, SrcPos: b.SrcBegin, DstPos: b.DstBegin + o})
			}
		case Delete:
			for o := 0; o < b.SrcEnd-b.SrcBegin; o++ {
				ops = append(ops, EditOp{Kind: Delete, SrcPos: b.SrcBegin + o, DstPos: b.DstBegin})
			}
		}
	}

	return ops, nil
}
