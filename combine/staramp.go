package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// resolveStarAmp disambiguates every '*'/'&'/'&&' chunk per spec.md
// section 4.5's star/amp disambiguation table. The three roles a '*' or
// '&' can play are: a pointer/reference declarator (part of a type),
// a unary operator (dereference / address-of), or a binary operator
// (multiply / bitwise-and). The Kind stays KindStar/KindAmp/KindDoubleAmp
// in all three cases (there is no separate "declarator star" token kind —
// spec.md's alignment engine cares about star/amp *style* (IGNORE/
// INCLUDE/DANGLE), not a distinct kind) but ParentType is set to
// token.KindVarTypeWord for the declarator role so markVarDefs can walk
// back through a run of stars/amps to find where a declaration's type
// starts.
func resolveStarAmp(s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		switch c.Type {
		case token.KindStar, token.KindAmp, token.KindDoubleAmp:
			classifyStarAmp(s, c)
		}
		return true
	})
}

func classifyStarAmp(s *chunk.Store, c *chunk.Chunk) {
	prev := s.PrevNCNNL(c)
	next := s.NextNCNNL(c)

	if isTypeLike(prev.Type) && (next.Type == token.KindIdent || isStarAmp(next.Type)) {
		// "Type * name" / "Type * * name" / "Type & name": declarator.
		c.ParentType = token.KindVarTypeWord
		return
	}

	// Either a unary prefix ("return *p", "f(*p)", "a = &b") or the binary
	// operator ("2 * x", "a & 1") — both leave ParentType at its zero
	// value; only the declarator role needs tagging for markVarDefs.
	c.ParentType = token.KindNone
}

func isStarAmp(k token.Kind) bool {
	return k == token.KindStar || k == token.KindAmp || k == token.KindDoubleAmp
}

// isTypeLike reports whether k is consistent with being the tail of a
// type-name preceding a declarator star/amp.
func isTypeLike(k token.Kind) bool {
	switch k {
	case token.KindType, token.KindQualifier, token.KindIdent, token.KindScopeRes,
		token.KindAngleCloseTemplate, token.KindKeywordConst:
		return true
	}
	return isStarAmp(k)
}
