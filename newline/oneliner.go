package newline

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// undoOneLiner clears FlagOneLiner from every chunk on pc's logical line,
// walking outward from pc until a newline or the FlagOneLiner run ends.
// Grounded in original_source's newlines/one_liner.h: called right before
// a newline is inserted that would split a one-liner construct, since
// inserting that newline means the construct is no longer one line.
// UndoOneLiner is the exported form of undoOneLiner, used by package split
// when a width-overflowing one-liner construct must be expanded before a
// split point can be chosen within it.
func UndoOneLiner(s *chunk.Store, pc *chunk.Chunk) {
	undoOneLiner(s, pc)
}

func undoOneLiner(s *chunk.Store, pc *chunk.Chunk) {
	if pc.IsNull() || !pc.Flags.Has(token.FlagOneLiner) {
		return
	}
	pc.Flags = pc.Flags.Clear(token.FlagOneLiner)
	for c := s.Prev(pc); !c.IsNull() && !isNewline(c.Type) && c.Flags.Has(token.FlagOneLiner); c = s.Prev(c) {
		c.Flags = c.Flags.Clear(token.FlagOneLiner)
	}
	for c := s.Next(pc); !c.IsNull() && !isNewline(c.Type) && c.Flags.Has(token.FlagOneLiner); c = s.Next(c) {
		c.Flags = c.Flags.Clear(token.FlagOneLiner)
	}
}
