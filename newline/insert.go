// Package newline implements the Newline/Brace Normalizer (spec.md section
// 4.6): brace-placement policy per construct kind, one-liner preservation,
// and the newline-insertion contract synthesized chunks must follow.
package newline

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

func isNewline(k token.Kind) bool {
	return k == token.KindNewline || k == token.KindNewlineCont
}

// addBetween synthesizes a newline chunk immediately after prev, which
// must be adjacent to next in the stream. Grounded in original_source's
// newlines/setup_newline_add.cpp: level/brace-level/pp-level and the
// copy-mask flag subset come from prev; the chunk only keeps
// FlagInPreprocessor when both prev and next carry it (a newline that
// closes a preprocessor body's last line is not itself "in" it); inside a
// preprocessor body it is spelled as a continuation ("\\\n") rather than a
// plain newline.
func addBetween(ctx *cpd.Context, s *chunk.Store, prev, next *chunk.Chunk) *chunk.Chunk {
	undoOneLiner(s, prev)

	nl := s.Create("\n", token.KindNewline, (prev.Flags & token.CopyMask()).Clear(token.FlagInPreprocessor))
	nl.Level = prev.Level
	nl.BraceLevel = prev.BraceLevel
	nl.PPLevel = prev.PPLevel
	nl.OrigLine = prev.OrigLine
	nl.NlCount = 1
	nl.Flags = nl.Flags.Set(token.FlagInsertedWhitespace)

	if prev.Flags.Has(token.FlagInPreprocessor) && next.Flags.Has(token.FlagInPreprocessor) {
		nl.Flags = nl.Flags.Set(token.FlagInPreprocessor)
		nl.Type = token.KindNewlineCont
		nl.Text = "\\\n"
	}

	s.InsertAfter(prev, nl)
	ctx.MarkChange()
	return nl
}

// EnsureAfter guarantees a newline-family chunk directly follows prev,
// inserting one via addBetween only if none is already there.
func EnsureAfter(ctx *cpd.Context, s *chunk.Store, prev *chunk.Chunk) *chunk.Chunk {
	if prev.IsNull() {
		return prev
	}
	next := s.Next(prev)
	if isNewline(next.Type) {
		return next
	}
	return addBetween(ctx, s, prev, next)
}

// EnsureBefore guarantees a newline-family chunk directly precedes next.
func EnsureBefore(ctx *cpd.Context, s *chunk.Store, next *chunk.Chunk) *chunk.Chunk {
	if next.IsNull() {
		return next
	}
	prev := s.Prev(next)
	if isNewline(prev.Type) {
		return prev
	}
	return addBetween(ctx, s, prev, next)
}

// RemoveBefore deletes the newline-family chunk directly preceding next,
// if any, attaching next to the end of the previous line.
func RemoveBefore(ctx *cpd.Context, s *chunk.Store, next *chunk.Chunk) {
	if next.IsNull() {
		return
	}
	prev := s.Prev(next)
	if !isNewline(prev.Type) {
		return
	}
	s.Delete(prev)
	ctx.MarkChange()
}

// RemoveAfter deletes the newline-family chunk directly following prev, if
// any, joining prev's line with what used to be the next one.
func RemoveAfter(ctx *cpd.Context, s *chunk.Store, prev *chunk.Chunk) {
	if prev.IsNull() {
		return
	}
	next := s.Next(prev)
	if !isNewline(next.Type) {
		return
	}
	s.Delete(next)
	ctx.MarkChange()
}
