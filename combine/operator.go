package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// markOperatorShift tags a '<<'/'>>' that names an overloaded operator
// ("operator<<", as in an ostream-inserter declaration) rather than
// performing an actual shift. The lexer already tokenizes "<<" as a
// single KindShiftLeft chunk regardless of role, so the only ambiguity
// left for the Combiner is which role this occurrence plays; unlike the
// angle brackets, there's no retagging to do here since downstream
// stages only need to know the operator-name role, not a different Kind,
// so it's carried as ParentType (spec.md section 4.5).
func markOperatorShift(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindShiftLeft && c.Type != token.KindShiftRight {
			return true
		}
		prev := s.PrevNCNNL(c)
		if prev.Type != token.KindKeywordOperator {
			return true
		}
		c.ParentType = token.KindKeywordOperator
		ctx.MarkChange()
		return true
	})
}

// markTrailingReturn tags a C++11 trailing-return-type arrow
// ("auto f(int x) -> int"): an '->' immediately following a function
// signature's closing paren (or a trailing cv/noexcept qualifier run
// after it) rather than one used in member access. ParentType carries
// the role since Kind already distinguishes '->' from every other
// operator.
func markTrailingReturn(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindArrow {
			return true
		}
		prev := s.PrevNCNNL(c)
		for isTrailingQualifier(prev.Type) {
			prev = s.PrevNCNNL(prev)
		}
		if prev.Type != token.KindFParenClose {
			return true
		}
		c.ParentType = token.KindFuncDef
		ctx.MarkChange()
		return true
	})
}

func isTrailingQualifier(k token.Kind) bool {
	switch k {
	case token.KindKeywordConst, token.KindQualifier:
		return true
	}
	return false
}
