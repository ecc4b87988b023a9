// Package cerrors defines the error kinds the core raises (spec.md section
// 7) and their propagation policy: lexing/combining errors are recoverable
// (the caller bumps cpd.Context.ErrorCount and continues); capacity errors
// are fatal. Wrapping uses github.com/pkg/errors so a stack trace survives
// from the point of detection up to wherever format.Run ultimately reports
// it, matching the teacher's own error-wrapping idiom
// (handler/handler.go's `errors.New`/`errors.Wrap` calls).
package cerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the five error kinds spec.md section 7 names.
type Kind int

const (
	UnterminatedLiteral Kind = iota
	UnmatchedCloser
	OptionOverflow
	StackCapacity
	MalformedConfig
)

func (k Kind) String() string {
	switch k {
	case UnterminatedLiteral:
		return "UnterminatedLiteral"
	case UnmatchedCloser:
		return "UnmatchedCloser"
	case OptionOverflow:
		return "OptionOverflow"
	case StackCapacity:
		return "StackCapacity"
	case MalformedConfig:
		return "MalformedConfig"
	}
	return "Unknown"
}

// Fatal reports whether errors of this kind abort the pipeline rather than
// being recorded and continued past.
func (k Kind) Fatal() bool {
	return k == OptionOverflow || k == StackCapacity
}

// Error is the concrete error value raised for every Kind. Recoverable
// kinds are still returned as an *Error (rather than only logged) so
// callers that want to inspect or test against a specific kind can use
// errors.As.
type Error struct {
	Kind Kind
	Line int
	Col  int
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Col, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// New builds a recoverable/fatal Error, wrapped with a stack trace via
// pkg/errors (see StackTrace) so whoever logs it can print it with
// context.
func New(kind Kind, line, col int, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind: kind,
		Line: line,
		Col:  col,
		msg:  msg,
		err:  errors.Errorf("%s: %s", kind, msg),
	}
}

// StackTrace exposes the pkg/errors stack trace of the wrapped cause, for
// diagnostics.
func (e *Error) StackTrace() errors.StackTrace {
	type stackTracer interface{ StackTrace() errors.StackTrace }
	if st, ok := e.err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}
