package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// matchTernaries finds every '?' that introduces a ternary conditional
// expression and matches it to the ':' that closes it, retagging that
// ':' to KindCondColon and flagging every chunk strictly between the '?'
// and the ':' with token.FlagInCondExpr (spec.md section 4.5).
//
// A '?' at brace/paren Level L is matched to the first ':' seen at that
// same Level — any ':' encountered at a deeper Level belongs to a nested
// ternary, a label, a bitfield width, or an access specifier, not to this
// one. KindColon is used for every ':' until matched here; labels/
// access-specifiers/case-colons are retagged separately and never reach
// this pass still bearing KindColon inside a plausible ternary span
// because those contexts don't follow a KindQuestion.
func matchTernaries(ctx *cpd.Context, s *chunk.Store) {
	var pending []*chunk.Chunk // open '?' chunks, innermost last

	s.Each(func(c *chunk.Chunk) bool {
		switch c.Type {
		case token.KindQuestion:
			pending = append(pending, c)
		case token.KindColon:
			if len(pending) == 0 {
				return true
			}
			q := pending[len(pending)-1]
			if c.Level != q.Level {
				return true // nested deeper; not this ternary's colon
			}
			pending = pending[:len(pending)-1]
			c.Type = token.KindCondColon
			for between := s.Next(q); !between.IsNull() && between.ID() != c.ID(); between = s.Next(between) {
				between.Flags = between.Flags.Set(token.FlagInCondExpr)
			}
			ctx.MarkChange()
		case token.KindSemicolon:
			// A statement boundary abandons every still-open '?': it was
			// never a ternary (e.g. a malformed expression or a label).
			pending = pending[:0]
		}
		return true
	})
}
