package newline

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// Run applies the Newline/Brace Normalizer's passes in order: tag
// single-line brace pairs as one-liners, brace placement for every
// role-tagged construct, the else/catch "} else" line-join policy, then
// the handful of unconditional "insert a newline after this token" rules
// original_source's newlines/after.cpp names.
func Run(ctx *cpd.Context, s *chunk.Store) {
	markOneLiners(ctx, s)
	ApplyBracePlacement(ctx, s)
	ApplyElseCatchPlacement(ctx, s)
	afterLabelColon(ctx, s)
	afterMultilineComment(ctx, s)
}

// afterLabelColon forces a newline after every "label:", per
// original_source's newline_after_label_colon: a label is always
// statement-introducing, so code must never continue on the same line.
func afterLabelColon(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindLabelColon {
			return true
		}
		EnsureAfter(ctx, s, c)
		return true
	})
}

// afterMultilineComment ensures a block comment is never immediately
// followed by code on the same line, per original_source's
// newline_after_multiline_comment (a run of adjacent comments is allowed;
// the first non-comment chunk after the run gets the newline).
func afterMultilineComment(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindCommentBlock && c.Type != token.KindCommentDoc {
			return true
		}
		tmp := s.Next(c)
		for !tmp.IsNull() && !isNewline(tmp.Type) {
			if !token.IsComment(tmp.Type) {
				EnsureBefore(ctx, s, tmp)
				return true
			}
			tmp = s.Next(tmp)
		}
		return true
	})
}
