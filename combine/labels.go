package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// markLabelsAndAccess retags every ':' still bearing the generic
// KindColon after matchTernaries has claimed the ternary ones: an
// access-specifier colon ("public:"), a default-label colon, a switch
// case colon, or a goto-style statement label. Grounded in spec.md section
// 4.5's re-tagging table and in matchTernaries' own doc comment, which
// already promised this split but left it for a separate pass.
//
// A bitfield width colon ("int x : 3;") is never mistaken for a label:
// its preceding identifier is itself preceded by a type word, not a
// statement boundary, so isStatementStart's boundary check rejects it.
func markLabelsAndAccess(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindColon {
			return true
		}

		prev := s.PrevNCNNL(c)
		switch prev.Type {
		case token.KindKeywordPublic, token.KindKeywordPrivate, token.KindKeywordProtected:
			c.Type = token.KindAccessColon
			ctx.MarkChange()
			return true
		case token.KindKeywordDefault:
			c.Type = token.KindDefaultColon
			ctx.MarkChange()
			return true
		}

		if isCaseColon(s, c) {
			c.Type = token.KindCaseColon
			ctx.MarkChange()
			return true
		}

		if prev.Type == token.KindIdent && isStatementStart(s, prev) {
			prev.Type = token.KindLabel
			c.Type = token.KindLabelColon
			ctx.MarkChange()
		}
		return true
	})
}

// isCaseColon walks backward from colon at its own Level looking for the
// "case" keyword that introduced it, stopping at any statement/compound
// boundary (a colon belonging to an outer construct never crosses one).
func isCaseColon(s *chunk.Store, colon *chunk.Chunk) bool {
	level := colon.Level
	for c := s.PrevNCNNL(colon); !c.IsNull() && c.Level == level; c = s.PrevNCNNL(c) {
		switch c.Type {
		case token.KindKeywordCase:
			return true
		case token.KindSemicolon, token.KindBraceOpen, token.KindBraceClose,
			token.KindCaseColon, token.KindDefaultColon, token.KindLabelColon,
			token.KindAccessColon:
			return false
		}
		if token.IsBraceOpen(c.Type) || token.IsBraceClose(c.Type) {
			return false
		}
	}
	return false
}

// isStatementStart reports whether ident is the first token of its
// statement: the chunk before it (skipping comments/newlines) is a
// statement/compound boundary or the start of the file.
func isStatementStart(s *chunk.Store, ident *chunk.Chunk) bool {
	prev := s.PrevNCNNL(ident)
	if prev.IsNull() {
		return true
	}
	switch prev.Type {
	case token.KindSemicolon, token.KindCaseColon, token.KindDefaultColon, token.KindLabelColon:
		return true
	}
	if token.IsBraceOpen(prev.Type) || token.IsBraceClose(prev.Type) {
		return true
	}
	return false
}
