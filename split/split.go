// Package split implements the Width Splitter (spec.md section 4.8): a
// pass over the finalized-enough chunk stream that inserts newlines ahead
// of the best candidate split point on any line still wider than
// code_width, working outward from the overflowing chunk.
//
// Grounded in original_source's src/width.cpp: the priority table
// (priority.go), do_code_width's outer scan, try_split_here's candidate
// scoring, and split_line/split_before_chunk's newline-insertion and
// continuation-marking steps are ported in that order below. The three
// dedicated original handlers for for-statements, template argument
// lists, and (non-"full") function parameter lists are folded into the
// single generic backward scan here, since the priority table's
// semicolon/comma/fparen entries already produce the same split points for
// those constructs without a dedicated code path; only the "split every
// parameter" ls_func_split_full behavior keeps its own function (see
// splitFuncParamsFull).
package split

import (
	"unicode/utf8"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/newline"
	"github.com/chunkfmt/chunkfmt/token"
)

// Run walks s once, splitting any line whose last chunk's right edge
// exceeds code_width. A line that cannot be split (no candidate point
// found) stops the whole pass, matching original_source's do_code_width:
// a single unsplittable overflow means every later line is left alone too
// rather than retried chunk by chunk.
func Run(ctx *cpd.Context, s *chunk.Store) {
	width := int(ctx.Options.Unsigned("code_width"))
	if width == 0 {
		return
	}
	lsCodeWidth := ctx.Options.Bool("ls_code_width")
	lsFuncSplitFull := ctx.Options.Bool("ls_func_split_full")
	fparenPri := 21
	if ctx.Options.Signed("indent_continue") < 0 {
		fparenPri = 8
	}

	pc := s.GetHead()
	for !pc.IsNull() {
		if token.IsComment(pc.Type) || token.IsWhitespaceOrNewline(pc.Type) {
			pc = s.Next(pc)
			continue
		}
		if !isPastWidth(pc, width) {
			pc = s.Next(pc)
			continue
		}
		if pc.Type == token.KindVBrace && isLastOnLine(s, pc) {
			pc = s.Next(pc)
			continue
		}
		if !splitLine(ctx, s, pc, fparenPri, lsCodeWidth, lsFuncSplitFull) {
			break
		}
		nl := s.NextNewline(pc)
		if nl.IsNull() {
			break
		}
		pc = s.Next(nl)
	}
}

func chunkWidth(c *chunk.Chunk) int {
	return utf8.RuneCountInString(c.Text)
}

func isPastWidth(pc *chunk.Chunk, width int) bool {
	return pc.Column+chunkWidth(pc)-1 > width
}

func isNewlineKind(k token.Kind) bool {
	return k == token.KindNewline || k == token.KindNewlineCont
}

func isLastOnLine(s *chunk.Store, pc *chunk.Chunk) bool {
	n := s.Next(pc)
	return n.IsNull() || isNewlineKind(n.Type)
}

// splitLine attempts to split the logical line containing start, returning
// whether a split happened. Expanding a one-liner instead returns false.
func splitLine(ctx *cpd.Context, s *chunk.Store, start *chunk.Chunk, fparenPri int, lsCodeWidth, lsFuncSplitFull bool) bool {
	if start.Flags.Has(token.FlagOneLiner) {
		// Expanding the one-liner (rather than splitting it) is itself the
		// fix: the construct's body is no longer eligible to collapse back
		// onto one line once the normalizer reruns.
		newline.UndoOneLiner(s, start)
		newline.ApplyBracePlacement(ctx, s)
		return false
	}

	if lsFuncSplitFull && start.Flags.Any(token.FlagInFuncDef|token.FlagInFuncCall) {
		if splitFuncParamsFull(ctx, s, start) {
			return true
		}
	}

	return splitGeneric(ctx, s, start, fparenPri, lsCodeWidth)
}

// splitGeneric walks backward from start to the start of its logical line,
// scoring every chunk via trySplitHere, then splits before (or after) the
// best-scoring candidate.
func splitGeneric(ctx *cpd.Context, s *chunk.Store, start *chunk.Chunk, fparenPri int, lsCodeWidth bool) bool {
	var best *chunk.Chunk
	bestPri := 0

	for pc := start; !pc.IsNull() && !isNewlineKind(pc.Type); pc = s.Prev(pc) {
		trySplitHere(s, pc, fparenPri, lsCodeWidth, &best, &bestPri)
	}
	if best == nil {
		return false
	}

	var target *chunk.Chunk
	if posLead(best, ctx.Options) {
		target = best
	} else {
		target = s.NextNCNNL(best)
		if target.IsNull() {
			target = best
		}
	}
	target = skipSmallForward(s, target)

	splitBeforeChunk(ctx, s, target)
	return true
}

// trySplitHere scores pc as a candidate split point, updating *best/*bestPri
// if pc beats the current candidate. Ported from try_split_here.
func trySplitHere(s *chunk.Store, pc *chunk.Chunk, fparenPri int, lsCodeWidth bool, best **chunk.Chunk, bestPri *int) {
	pri := splitPriority(pc, fparenPri)
	if pri == 0 {
		return
	}

	prev := s.Prev(pc)
	if isNewlineKind(prev.Type) && pc.Type != token.KindString {
		// Already at the start of a line; splitting here would be a no-op.
		return
	}

	if pc.Type == token.KindFParenOpen {
		if next := s.Next(pc); next.Type == token.KindFParenClose {
			return
		}
	}

	if pc.Type == token.KindString {
		if next := s.Next(pc); next.Type != token.KindString {
			return
		}
	}

	// Keep the tightest groupings (priority 22 and above, such as
	// qualified-type chains) together unless ls_code_width explicitly asks
	// for maximal splitting.
	if pri >= 22 && !lsCodeWidth {
		return
	}

	if pri == 25 {
		next := s.NextNNL(pc)
		switch next.Type {
		case token.KindType, token.KindQualifier, token.KindKeywordClass, token.KindKeywordStruct:
			// still mid qualified-type chain; not the last word yet.
		default:
			return
		}
	}

	switch {
	case *best == nil:
	case pri < *bestPri:
	case pri == *bestPri && pc.Type != token.KindFParenOpen && pc.Level < (*best).Level:
	default:
		return
	}
	*best = pc
	*bestPri = pri
}

// skipSmallForward advances pc past a run of commas/semicolons, so a
// continuation line never starts with a lone separator.
func skipSmallForward(s *chunk.Store, pc *chunk.Chunk) *chunk.Chunk {
	for !pc.IsNull() && (pc.Type == token.KindComma || pc.Type == token.KindSemicolon) {
		n := s.NextNCNNL(pc)
		if n.IsNull() {
			break
		}
		pc = n
	}
	return pc
}

// splitBeforeChunk inserts a newline directly before pc (idempotent via
// newline.EnsureBefore), flags pc as a continuation line, and — when the
// chunk immediately preceding the split is itself an opening
// paren/bracket — flags that opener and its matching closer too, so the
// Indenter can give the whole bracketed group a hanging indent. Ported
// from split_before_chunk; the exact continuation column is left to
// package indent's FlagContinuationLine handling rather than computed
// here, since indent.Run always reruns after split.Run and must already
// know how to indent every continuation line consistently.
func splitBeforeChunk(ctx *cpd.Context, s *chunk.Store, pc *chunk.Chunk) {
	prev := s.Prev(pc)
	alreadySplit := isNewlineKind(prev.Type)
	if !alreadySplit {
		newline.EnsureBefore(ctx, s, pc)
	}
	pc.Flags = pc.Flags.Set(token.FlagContinuationLine)

	if alreadySplit {
		return
	}
	if !isContinuationOpener(prev.Type) {
		return
	}
	prev.Flags = prev.Flags.Set(token.FlagContinuationLine)
	if closer := s.GetClosingParen(prev); !closer.IsNull() {
		closer.Flags = closer.Flags.Set(token.FlagContinuationLine)
	}
}

func isContinuationOpener(k token.Kind) bool {
	switch k {
	case token.KindParenOpen, token.KindLParenOpen, token.KindSParenOpen,
		token.KindFParenOpen, token.KindSquareOpen:
		return true
	}
	return false
}

// splitFuncParamsFull splits every parameter of the call/definition
// enclosing start onto its own line, per the ls_func_split_full option
// (original_source's split_fcn_params_full), rather than only the single
// best-scoring comma the generic scan would otherwise pick.
func splitFuncParamsFull(ctx *cpd.Context, s *chunk.Store, start *chunk.Chunk) bool {
	opener := enclosingParen(s, start)
	if opener.IsNull() {
		return false
	}

	splitBeforeChunk(ctx, s, s.NextNCNNL(opener))
	did := false
	level := opener.Level
	for c := s.Next(opener); !c.IsNull() && c.Level >= level; c = s.Next(c) {
		if c.Level == level && c.Type == token.KindComma {
			if after := s.NextNCNNL(c); !after.IsNull() {
				splitBeforeChunk(ctx, s, after)
				did = true
			}
		}
	}
	return did
}

// enclosingParen walks backward from pc to the nearest unclosed
// paren/bracket opener at pc's own nesting level (an opener reports the
// same Level as its contents, per package levels).
func enclosingParen(s *chunk.Store, pc *chunk.Chunk) *chunk.Chunk {
	level := pc.Level
	for c := s.Prev(pc); !c.IsNull(); c = s.Prev(c) {
		if c.Level == level && token.IsParenOpenAny(c.Type) {
			return c
		}
	}
	return s.Get(chunk.NullID)
}
