package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// markParamPacks tags a variadic parameter pack's declaration site:
// "Type... name" inside a template parameter list or function signature.
// The '...' becomes KindParamPack and the declared name is flagged
// token.FlagParamPack (spec.md section 4.5).
func markParamPacks(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindEllipsis {
			return true
		}
		prev := s.PrevNCNNL(c)
		next := s.NextNCNNL(c)
		if !isTypeLike(prev.Type) || next.Type != token.KindIdent {
			return true
		}
		c.Type = token.KindParamPack
		next.Flags = next.Flags.Set(token.FlagParamPack)
		ctx.MarkChange()
		return true
	})
}

// ParameterPackCleanup marks the complementary use site a declaration pass
// alone can't reach: a pack *expansion*, where the '...' follows rather
// than precedes its name ("f(args...)", "sizeof...(Args)"). Declaration
// ("Type... name") and expansion ("name...") are mirror-image token
// shapes, so they're kept as two passes rather than one combined scan.
func ParameterPackCleanup(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindEllipsis {
			return true
		}
		prev := s.PrevNCNNL(c)
		switch prev.Type {
		case token.KindIdent:
			prev.Flags = prev.Flags.Set(token.FlagParamPack)
			c.Type = token.KindParamPack
			ctx.MarkChange()
		case token.KindKeywordSizeof:
			// sizeof...(Args): the pack-count operator, not an expansion of
			// a preceding name.
			c.Type = token.KindParamPack
			ctx.MarkChange()
		}
		return true
	})
}
