// Package editop models edit operations between two symbol sequences and
// the algebra over them: find, convert, invert, apply, subtract, matching
// blocks and structural validation.
//
// 🚀 What is editop?
//
//	Where strdist answers "how far apart", editop answers "which edits".
//	  • Find           — one canonical optimal alignment as atomic ops
//	  • ToOpCodes      — block form that fully partitions both sequences
//	  • ToEditOps      — back to atomic ops, with or without Keep entries
//	  • Invert         — swap source and destination roles
//	  • Apply          — replay a (possibly partial) edit onto a sequence
//	  • Subtract       — remove an already-applied sub-edit, re-indexed
//	  • MatchingBlocks — maximal runs untouched by any edit
//	  • Check          — structural validation with a precise error kind
//
// Two op representations:
//
//   - EditOp — one atomic operation with left-edge offsets into the source
//     (SrcPos) and destination (DstPos). A sequence is ordered when both
//     offsets are non-decreasing and normalized when it carries no Keep
//     entries. Find returns ordered, normalized sequences.
//
//   - OpCode — one block operation over half-open ranges, in the style of
//     diff tooling. A valid OpCode sequence exactly partitions
//     [0,len1) and [0,len2): contiguous, starting at 0, ending at
//     (len1,len2), Keep blocks spanning equal lengths on both sides.
//
// Find's backtrace resolves ties between equally cheap alignments with a
// fixed preference order — continue the current insert/delete run, then
// keep, replace, insert, delete — so the same inputs always yield the
// same alignment. It is one canonical optimum, not necessarily the only
// optimum.
//
// Validation contract: Apply, Invert, Subtract, MatchingBlocks and the
// converters validate their op-sequence inputs up front (via Check /
// CheckOpCodes) and then trust them; none of them re-derives validity
// mid-walk. Structural failures surface as ErrInvalidEditOps with the
// offending ErrorKind in the message.
//
// Complexity:
//
//	Find     = O(len1·len2) time and memory (full matrix, backtrace)
//	algebra  = O(#ops) time
//
// All functions are synchronous and safe for concurrent use on shared
// read-only inputs.
package editop
