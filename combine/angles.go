package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// angleCandidate is a '<' seen during the forward scan whose status
// (template bracket vs. less-than comparison) isn't resolved until its
// matching '>' is found or the candidate is abandoned.
type angleCandidate struct {
	open  *chunk.Chunk
	depth int // brace/paren Level at the point the '<' was seen
}

// resolveAngles retags every '<'/'>' pair in s as either a template
// bracket (KindAngleOpenTemplate/KindAngleCloseTemplate, with
// token.FlagInTemplate set on everything strictly between them) or a
// comparison operator (KindAngleCompareLT/KindAngleCompareGT), per spec.md
// section 4.5's "angle-bracket disambiguation".
//
// This runs its own independent nesting scan rather than consulting
// Chunk.Level/MatchID (see token.IsOpener's doc comment): a candidate '<'
// is accepted as a template opener only if a plausible type-name precedes
// it and the nearest unmatched '>' at the same brace/paren Level is found
// before a ';', '{' or '}' or a logical '&&'/'||' — the same heuristic
// original_source's combine.cpp uses to reject `a < b` in
// `if (a < b && c > d)`.
func resolveAngles(ctx *cpd.Context, s *chunk.Store) {
	var stack []angleCandidate

	s.Each(func(c *chunk.Chunk) bool {
		switch c.Type {
		case token.KindAngleOpen:
			if looksLikeTemplateStart(s, c) {
				stack = append(stack, angleCandidate{open: c, depth: c.Level})
			} else {
				c.Type = token.KindAngleCompareLT
			}
			return true

		case token.KindAngleClose:
			if len(stack) > 0 && stack[len(stack)-1].depth == c.Level {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				commitTemplate(ctx, s, top.open, c)
			} else {
				c.Type = token.KindAngleCompareGT
			}
			return true

		case token.KindSemicolon, token.KindBraceOpen, token.KindBraceClose,
			token.KindDoubleAmp, token.KindBoolOr:
			// A statement boundary or a logical operator inside an open
			// candidate disqualifies it: it was a comparison, not a template.
			for _, cand := range stack {
				cand.open.Type = token.KindAngleCompareLT
			}
			stack = stack[:0]
			return true
		}
		return true
	})

	// Any candidate left open at EOF (unmatched '<') was a comparison.
	for _, cand := range stack {
		cand.open.Type = token.KindAngleCompareLT
	}
}

// looksLikeTemplateStart reports whether the token immediately before open
// is consistent with a template-id (an identifier, a type keyword, or a
// preceding '::'), which rules out binary-expression contexts like
// "a < b" where the left operand was already classified as part of a
// larger expression (a closing paren/bracket, a literal, an operator).
func looksLikeTemplateStart(s *chunk.Store, open *chunk.Chunk) bool {
	prev := s.PrevNCNNL(open)
	switch prev.Type {
	case token.KindIdent, token.KindType, token.KindScopeRes,
		token.KindKeywordTemplate, token.KindAngleCloseTemplate:
		return true
	}
	return false
}

// commitTemplate retags the bracket pair and flags everything between
// them as being inside a template argument list.
func commitTemplate(_ *cpd.Context, s *chunk.Store, open, close *chunk.Chunk) {
	open.Type = token.KindAngleOpenTemplate
	close.Type = token.KindAngleCloseTemplate
	open.MatchID = close.ID()
	close.MatchID = open.ID()

	for c := s.Next(open); !c.IsNull() && c.ID() != close.ID(); c = s.Next(c) {
		c.Flags = c.Flags.Set(token.FlagInTemplate)
	}
}
