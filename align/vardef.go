package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// VarDefs aligns the declared name of consecutive variable definitions
// inside a brace body, recursing into nested brace bodies independently.
// Grounded in original_source's align/var_def_brace.cpp, scoped down to a
// single AlignStack per level (the original also runs sibling AlignStacks
// for bitfield colons and attributes, and special-cases struct/class/union
// span overrides and inline function prototypes mixed in with fields — see
// Design decisions). Parens and square brackets nested inside a candidate
// declarator (array sizes, function-pointer parameter lists) are skipped
// via the Level > BraceLevel check, matching the original's "don't align
// stuff inside parenthesis/squares/angles" rule.
func VarDefs(s *chunk.Store, opts options.Provider) {
	span := int(opts.Unsigned("align_var_def_span"))
	if span == 0 {
		return
	}
	thresh := int(opts.Unsigned("align_var_def_thresh"))
	gap := int(opts.Unsigned("align_var_def_gap"))
	starStyle := StarStyle(opts.Unsigned("align_var_def_star_style"))
	ampStyle := StarStyle(opts.Unsigned("align_var_def_amp_style"))
	includeInline := opts.Bool("align_var_def_inline")

	alignVarDefBody(s, s.GetHead(), 0, span, thresh, gap, starStyle, ampStyle, includeInline)
}

// alignVarDefBody aligns one brace body (the chunks from first up to, but
// not including, the matching close brace) and returns the chunk
// immediately following that close brace. first is the first chunk to
// examine, inclusive; bodyLevel is the Level every top-of-scope candidate
// in this body must sit at.
func alignVarDefBody(s *chunk.Store, first *chunk.Chunk, bodyLevel, span, thresh, gap int, starStyle, ampStyle StarStyle, includeInline bool) *chunk.Chunk {
	as := New(s)
	as.Start(span, thresh)
	as.Gap = gap
	as.StarStyle = starStyle
	as.AmpStyle = ampStyle

	didThisLine := false
	pc := first
	for !pc.IsNull() {
		if pc.Level < bodyLevel && pc.Level != 0 && !pc.Flags.Has(token.FlagInPreprocessor) {
			break
		}

		if pc.Type == token.KindNewline || pc.Type == token.KindNewlineCont {
			didThisLine = false
			as.NewLines(pc.NlCount)
			pc = s.Next(pc)
			continue
		}

		if token.IsBraceOpen(pc.Type) {
			pc = alignVarDefBody(s, s.Next(pc), pc.Level+1, span, thresh, gap, starStyle, ampStyle, includeInline)
			continue
		}
		if token.IsBraceClose(pc.Type) {
			pc = s.Next(pc)
			break
		}

		if pc.Level > pc.BraceLevel {
			pc = s.Next(pc)
			continue
		}

		if !didThisLine && isVarDefCandidate(pc, includeInline) {
			as.Add(pc)
			didThisLine = true
		}

		pc = s.Next(pc)
	}
	as.End()
	return pc
}

func isVarDefCandidate(c *chunk.Chunk, includeInline bool) bool {
	if !c.Flags.Has(token.FlagVarDefFirst) {
		if !includeInline || !c.Flags.Has(token.FlagVarDefInline) {
			return false
		}
	}
	return true
}
