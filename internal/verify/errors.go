package verify

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a configured copy size is negative.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnknownOp is returned for an operation name the harness does not know.
	ErrUnknownOp = errors.New("unknown op")

	// ErrCorrupt is the cause wrapped by every ErrMismatch.
	ErrCorrupt = errors.New("output mismatch")

	// ErrFault is returned when a fenced case touched a guard page.
	ErrFault = errors.New("memory fault")

	// ErrPathMismatch is returned when the build selected a different copy
	// path than the one requested with WithExpectPath.
	ErrPathMismatch = errors.New("unexpected copy path")
)

// ErrMismatch reports the first byte where an operation disagreed with the
// reference.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrMismatch struct {
	Case  Case
	Index int
	Want  byte
	Got   byte
	// Guard is set when the byte lies outside the destination region.
	Guard bool
	cause error
}

func (e *ErrMismatch) Error() string {
	where := "byte"
	if e.Guard {
		where = "guard byte"
	}
	return fmt.Sprintf("%s: %s %d: want %#02x, got %#02x", e.Case, where, e.Index, e.Want, e.Got)
}

func (e *ErrMismatch) Unwrap() error { return e.cause }

func newMismatch(c Case, index int, want, got byte, guard bool) *ErrMismatch {
	return &ErrMismatch{
		Case:  c,
		Index: index,
		Want:  want,
		Got:   got,
		Guard: guard,
		cause: ErrCorrupt,
	}
}
