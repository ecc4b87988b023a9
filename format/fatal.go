package format

import (
	"fmt"

	"github.com/chunkfmt/chunkfmt/cerrors"
)

// ErrOptionOverflow and ErrStackCapacity are the sentinels a caller tests
// against with errors.Is, one per cerrors.Kind that cerrors.Kind.Fatal()
// reports true for (spec.md section 7: OptionOverflow, StackCapacity).
var (
	ErrOptionOverflow = fmt.Errorf("chunkfmt: %s", cerrors.OptionOverflow)
	ErrStackCapacity  = fmt.Errorf("chunkfmt: %s", cerrors.StackCapacity)
)

// FatalError is what Run returns for an unrecoverable condition: the
// pipeline never started formatting, as opposed to the recoverable
// per-chunk errors folded into cpd.Context.ErrorCount. It wraps one of the
// package sentinels above so callers can use errors.Is(err,
// format.ErrStackCapacity) without caring about the concrete type,
// mirroring how handler/handler.go distinguishes a recoverable dispatch
// error from a log.Fatalf abort.
type FatalError struct {
	Kind  cerrors.Kind
	Cause error
}

func newFatal(kind cerrors.Kind, cause error) *FatalError {
	return &FatalError{Kind: kind, Cause: cause}
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("chunkfmt: fatal %s: %v", e.Kind, e.Cause)
}

// Unwrap exposes Cause to errors.As/errors.Unwrap.
func (e *FatalError) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel matching e.Kind, so
// errors.Is(err, format.ErrStackCapacity) works without a type assertion.
func (e *FatalError) Is(target error) bool {
	switch e.Kind {
	case cerrors.OptionOverflow:
		return target == ErrOptionOverflow
	case cerrors.StackCapacity:
		return target == ErrStackCapacity
	}
	return false
}
