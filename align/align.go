// Package align implements the Alignment Engine (spec.md section 4.7):
// the AlignStack column-grouping state machine plus a representative
// subset of align_all's named passes. Each pass populates chunk.Align
// chains; it does not write a final output Column itself, since that
// resolution is the Indenter's job once the width splitter has run.
package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
)

// Run applies the alignment passes in the order original_source's
// align_all (align/align.cpp) calls them: typedefs, then left-shift
// chains, then variable definitions, then assignments.
func Run(ctx *cpd.Context, s *chunk.Store) {
	Typedefs(s, ctx.Options)
	LeftShift(s, ctx.Options)
	VarDefs(s, ctx.Options)
	Assigns(s, ctx.Options)
}
