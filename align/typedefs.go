package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// Typedefs aligns the tag name of every "typedef ... Name;" onto a common
// column, per original_source's align/typedefs.cpp. Grounded simplification:
// the original walks forward from "typedef" looking for the first chunk
// already flagged PCF_ANCHOR (set earlier, when the typedef's structure is
// classified); since nothing upstream of this pass tags that anchor yet,
// this pass finds it directly — the last identifier-like chunk before the
// terminating ';' at the typedef's own level, which is the tag name for
// every common typedef shape (plain, struct/enum/union body, and function-
// pointer).
func Typedefs(s *chunk.Store, opts options.Provider) {
	span := int(opts.Unsigned("align_typedef_span"))
	if span == 0 {
		return
	}

	as := New(s)
	as.Start(span, 0)
	as.Gap = int(opts.Unsigned("align_typedef_gap"))

	// One forward walk: each typedef's tag name is looked up when its
	// keyword is reached and added when the walk reaches the tag itself, so
	// the newlines counted since the previous tag decide whether it joins
	// the current group.
	var pending *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		switch {
		case c.Type == token.KindNewline || c.Type == token.KindNewlineCont:
			as.NewLines(c.NlCount)
		case c.Type == token.KindKeywordTypedef:
			pending = typedefTagName(s, c)
		case pending != nil && c.ID() == pending.ID():
			as.Add(c)
			pending = nil
		}
		return true
	})

	as.End()
}

func typedefTagName(s *chunk.Store, typedefKw *chunk.Chunk) *chunk.Chunk {
	var tag *chunk.Chunk
	for c := s.NextNCNNL(typedefKw); !c.IsNull(); c = s.NextNCNNL(c) {
		if c.Level < typedefKw.Level {
			break
		}
		if c.Type == token.KindSemicolon && c.Level == typedefKw.Level {
			break
		}
		if c.Level == typedefKw.Level && (c.Type == token.KindIdent || c.Type == token.KindType) {
			tag = c
		}
	}
	return tag
}
