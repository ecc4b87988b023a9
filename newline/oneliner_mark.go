package newline

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// markOneLiners sets FlagOneLiner on every chunk of a brace pair (and the
// brace chunks themselves) whose opener and closer sit on the same source
// line, so later passes (undoOneLiner here, split.splitLine) have a flag
// to test rather than re-deriving "is this still one line" from scratch
// every time. Grounded in original_source's newlines/one_liner.h, whose
// nl_create_one_liner sets the same flag the first time a brace pair is
// seen; that function's own body lives in newlines.cpp, which isn't part
// of this tree's original_source slice, so the braceless "virtual brace"
// one-liner case it also covers (`if (x) return 0;` with no `{}` at all)
// is not reproduced here — this tree never synthesizes the KindVBrace
// chunks that construct would need (see Design decisions).
//
// Must run before ApplyBracePlacement, since a brace placement rule that
// decides to split a one-liner needs undoOneLiner's cascade, and
// undoOneLiner only has something to clear if this pass ran first.
func markOneLiners(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if !token.IsBraceOpen(c.Type) {
			return true
		}
		closer := s.GetClosingParen(c)
		if closer.IsNull() || !sameLine(s, c, closer) {
			return true
		}
		for m := c; ; m = s.Next(m) {
			m.Flags = m.Flags.Set(token.FlagOneLiner)
			if m.ID() == closer.ID() {
				break
			}
		}
		return true
	})
}

// sameLine reports whether no newline chunk separates from and to.
func sameLine(s *chunk.Store, from, to *chunk.Chunk) bool {
	for c := s.Next(from); !c.IsNull(); c = s.Next(c) {
		if isNewline(c.Type) {
			return false
		}
		if c.ID() == to.ID() {
			return true
		}
	}
	return false
}
