package editop

// MatchingBlocks returns the complement of the positions touched by ops
// as maximal equal-length runs, terminated by the zero-length sentinel
// at (len1, len2). The run lengths sum to len1 minus the number of
// deleted and replaced source symbols.
//
// Errors: ErrInvalidEditOps when Check(len1, len2, ops) fails.
//
// Complexity: O(#ops).
func MatchingBlocks(ops []EditOp, len1, len2 int) ([]MatchingBlock, error) {
	if k := Check(len1, len2, ops); k != OK {
		return nil, k.Err()
	}

	var blocks []MatchingBlock
	spos, dpos := 0, 0
	for i := 0; i < len(ops); {
		if ops[i].Kind == Keep {
			i++

			continue
		}

		if spos < ops[i].SrcPos || dpos < ops[i].DstPos {
			blocks = append(blocks, MatchingBlock{SrcPos: spos, DstPos: dpos, Length: ops[i].SrcPos - spos})
			spos, dpos = ops[i].SrcPos, ops[i].DstPos
		}

		kind := ops[i].Kind
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
	}
	if spos < len1 || dpos < len2 {
		blocks = append(blocks, MatchingBlock{SrcPos: spos, DstPos: dpos, Length: len1 - spos})
	}
	blocks = append(blocks, MatchingBlock{SrcPos: len1, DstPos: len2, Length: 0})

	return blocks, nil
}

// MatchingBlocksOpCodes extracts the matching blocks from a block op
// sequence: every Keep block becomes one matching run, followed by the
// (len1, len2, 0) sentinel.
//
// Errors: ErrInvalidEditOps when CheckOpCodes(len1, len2, bops) fails.
//
// Complexity: O(#blocks).
func MatchingBlocksOpCodes(bops []OpCode, len1, len2 int) ([]MatchingBlock, error) {
	if k := CheckOpCodes(len1, len2, bops); k != OK {
		return nil, k.Err()
	}

	var blocks []MatchingBlock
	for _, b := range bops {
		if b.Kind == Keep {
			blocks = append(blocks, MatchingBlock{SrcPos: b.SrcBegin, DstPos: b.DstBegin, Length: b.SrcEnd - b.SrcBegin})
		}
	}
	blocks = append(blocks, MatchingBlock{SrcPos: len1, DstPos: len2, Length: 0})

	return blocks, nil
}
