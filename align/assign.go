package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// Assigns aligns the first '=' of each statement on a common column,
// recursing into brace bodies independently (a braced-init-list body is
// left alone, since its contents aren't a sequence of statements). Grounded
// in original_source's align/assign.cpp, scoped down to a single AlignStack
// for plain '=' (the original also runs separate sub-stacks for default
// function-argument '=' and "= delete"/"= default" function-prototype '=',
// and a variable-definition sub-stack gated on
// align_assign_on_multi_var_defs — see Design decisions).
func Assigns(s *chunk.Store, opts options.Provider) {
	span := int(opts.Unsigned("align_assign_span"))
	if span == 0 {
		return
	}
	thresh := int(opts.Unsigned("align_assign_thresh"))
	enumSpan := int(opts.Unsigned("align_enum_equ_span"))
	enumThresh := int(opts.Unsigned("align_enum_equ_thresh"))
	rightAlign := !opts.Bool("align_on_tabstop")

	alignAssignBody(s, s.GetHead(), span, thresh, rightAlign, enumSpan, enumThresh)
}

func alignAssignBody(s *chunk.Store, first *chunk.Chunk, span, thresh int, rightAlign bool, enumSpan, enumThresh int) *chunk.Chunk {
	as := New(s)
	as.Start(span, thresh)
	as.RightAlign = rightAlign

	equCount := 0
	pc := first
	for !pc.IsNull() {
		switch {
		case pc.Type == token.KindLParenOpen, pc.Type == token.KindSquareOpen,
			pc.Type == token.KindParenOpen, pc.Type == token.KindSParenOpen,
			pc.Type == token.KindBraceInit:
			// A braced-init-list's contents aren't a sequence of statements,
			// so it is skipped wholesale rather than recursed into, same as
			// a control/grouping/sizeof paren or a square-bracket subscript.
			closer := s.GetClosingParen(pc)
			if closer.IsNull() {
				pc = s.Next(pc)
				continue
			}
			pc = s.Next(closer)
			continue

		case token.IsBraceOpen(pc.Type):
			childSpan, childThresh := span, thresh
			if pc.Type == token.KindBraceOpenEnum {
				childSpan, childThresh = enumSpan, enumThresh
			}
			pc = alignAssignBody(s, s.Next(pc), childSpan, childThresh, rightAlign, enumSpan, enumThresh)
			equCount = 0
			continue

		case token.IsBraceClose(pc.Type):
			pc = s.Next(pc)
			as.End()
			return pc

		case pc.Type == token.KindNewline || pc.Type == token.KindNewlineCont:
			as.NewLines(pc.NlCount)
			equCount = 0

		case pc.Type == token.KindAssign && equCount == 0 && !pc.Flags.Has(token.FlagInTemplate):
			equCount++
			as.Add(pc)
		}
		pc = s.Next(pc)
	}
	as.End()
	return pc
}
