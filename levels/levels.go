// Package levels implements the Brace-Level Analyzer (spec.md section 4.4):
// a single forward pass that computes, for every chunk, its generic Level
// (all opener/closer families combined), BraceLevel ('{'/'}' only), and
// PPLevel (left untouched — set by package preprocess), pairs every opener
// with its closer by populating Chunk.MatchID, and assigns the
// sibling-group BlockNumber described in spec.md section 3.1.
//
// Grounded in the single explicit-stack traversal original_source's
// src/braces.cpp / src/tokenize_cleanup.cpp use to track brace depth,
// generalized to a single Go slice used as a stack of *chunk.Chunk openers
// rather than the original's parallel int arrays.
package levels

import (
	"github.com/chunkfmt/chunkfmt/cerrors"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/logging"
	"github.com/chunkfmt/chunkfmt/token"
)

// frame is one entry of the opener stack: the opener chunk itself, plus the
// block number assigned to its first direct child (spec.md section 4.4:
// "siblings at the same level immediately following one another, after a
// comma or other separator, share a block number; a nested opener starts a
// fresh one").
type frame struct {
	opener      *chunk.Chunk
	blockNumber int
}

// Run walks s once, computing Level/BraceLevel/MatchID/BlockNumber for
// every chunk. It must run after package preprocess (which has already set
// PPLevel) and before package combine (which consults Level/MatchID for
// paren-role classification).
func Run(ctx *cpd.Context, s *chunk.Store) {
	var stack []frame

	braceDepth := func() int {
		n := 0
		for _, f := range stack {
			if token.IsBraceOpen(f.opener.Type) {
				n++
			}
		}
		return n
	}

	newBlock := func() int { return ctx.NextBlockNumber() }

	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1]
	}

	s.Each(func(c *chunk.Chunk) bool {
		switch {
		case token.IsOpener(c.Type):
			if f := top(); f != nil {
				c.BlockNumber = f.blockNumber
			}
			stack = append(stack, frame{opener: c, blockNumber: newBlock()})
			// Level/BraceLevel are reported *including* this opener: its
			// own contents sit one level deeper than the stream around it.
			c.Level = len(stack)
			c.BraceLevel = braceDepth()
			return true

		case token.IsCloser(c.Type):
			// Level/BraceLevel are reported *after* this closer applies,
			// i.e. one less than the opener it pairs with (spec.md section
			// 3.2's "get_closing_paren returns ... level - 1" invariant).
			c.Level = len(stack) - 1
			if f := top(); f != nil {
				f.opener.MatchID = c.ID()
				c.MatchID = f.opener.ID()
				c.BlockNumber = f.blockNumber
				stack = stack[:len(stack)-1]
			} else {
				// An unmatched closer is reported and treated as top level.
				c.Level = 0
				ctx.BumpError()
				logging.Errorf(ctx.Logger, "%s", cerrors.New(cerrors.UnmatchedCloser,
					c.OrigLine, c.OrigCol, "%q has no matching opener", c.Text).Error())
			}
			c.BraceLevel = braceDepth()
			return true

		case c.Type == token.KindComma:
			c.Level = len(stack)
			c.BraceLevel = braceDepth()
			if f := top(); f != nil {
				c.BlockNumber = f.blockNumber
				f.blockNumber = newBlock()
			}
			return true

		default:
			c.Level = len(stack)
			c.BraceLevel = braceDepth()
			if f := top(); f != nil {
				c.BlockNumber = f.blockNumber
			}
			return true
		}
	})
}
