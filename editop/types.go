package editop

import (
	"errors"
	"fmt"
)

// ErrInvalidEditOps indicates an op sequence that failed structural
// validation. The wrapping error message names the precise ErrorKind;
// match with errors.Is.
var ErrInvalidEditOps = errors.New("editop: invalid edit operations")

// Kind identifies the effect of a single operation or block.
type Kind uint8

const (
	// Keep leaves matching symbols untouched.
	Keep Kind = iota
	// Replace substitutes one source run with a destination run.
	Replace
	// Insert adds destination symbols not present in the source.
	Insert
	// Delete drops source symbols not present in the destination.
	Delete

	numKinds
)

// String implements fmt.Stringer with difflib-style tag names.
func (k Kind) String() string {
	switch k {
	case Keep:
		return "equal"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// EditOp is one atomic edit operation. SrcPos and DstPos are left-edge
// offsets into the source and destination sequences. An Insert carries
// the source position it inserts before; a Delete carries the
// destination position it would map to.
type EditOp struct {
	Kind   Kind
	SrcPos int
	DstPos int
}

// OpCode is one block operation over half-open ranges
// [SrcBegin,SrcEnd) of the source and [DstBegin,DstEnd) of the
// destination.
type OpCode struct {
	Kind     Kind
	SrcBegin int
	SrcEnd   int
	DstBegin int
	DstEnd   int
}

// MatchingBlock is a maximal run of Length positions present in both
// sequences and untouched by any edit. A MatchingBlock sequence always
// ends with a zero-length sentinel at (len1, len2).
type MatchingBlock struct {
	SrcPos int
	DstPos int
	Length int
}

// ErrorKind classifies the outcome of structural validation.
type ErrorKind uint8

const (
	// OK means the sequence is structurally valid.
	OK ErrorKind = iota
	// BadKind means an op carries an unknown Kind.
	BadKind
	// OutOfBounds means a position or range leaves [0,len1]×[0,len2].
	OutOfBounds
	// NotOrdered means positions decrease along the sequence.
	NotOrdered
	// BadBlockBoundary means block ranges are malformed or non-contiguous.
	BadBlockBoundary
	// IncompleteSpan means the blocks do not cover [0,len1)×[0,len2).
	IncompleteSpan
)

// String implements fmt.Stringer.
func (e ErrorKind) String() string {
	switch e {
	case OK:
		return "ok"
	case BadKind:
		return "unknown operation kind"
	case OutOfBounds:
		return "position out of bounds"
	case NotOrdered:
		return "operations not ordered"
	case BadBlockBoundary:
		return "malformed block boundary"
	case IncompleteSpan:
		return "incomplete span coverage"
	}

	return fmt.Sprintf("ErrorKind(%d)", uint8(e))
}

// Err maps the kind to its error value: nil for OK, otherwise an error
// matching ErrInvalidEditOps under errors.Is.
func (e ErrorKind) Err() error {
	if e == OK {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidEditOps, e)
}
