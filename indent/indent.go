// Package indent implements the Indenter (spec.md section 4.9): computing
// the final output column of every chunk. The narrow spec wording only
// requires "the final column of the first chunk on every line", but this
// pass computes every chunk's Column, since that is what satisfies spec.md
// section 3.2's invariant ("For any chunk c, c.column >= 1 in the output
// stream") and gives package split something concrete to measure width
// against on a rerun.
//
// Grounded in original_source's reindent_line.h prototype (the only
// indent-specific header present in the retrieval pack; indent.cpp itself
// is not in the pack) plus the continuation-column formula width.cpp's
// split_before_chunk calls directly:
// brace_level*indent_columns + abs(indent_continue) + 1.
//
// Run works in two phases. Phase one (this file) is a single forward walk
// assigning every chunk a "natural" column: line-start chunks get a fresh
// column from level/construct rules, everything else inherits the
// previous chunk's right edge plus a single-space gap when the source had
// whitespace there (spec.md names no separate whitespace-insertion stage,
// so inter-token spacing within a line is preserved from the source
// rather than re-decided here). Phase two (resolve.go) then walks every
// chunk.Align chain package align produced and resolves it into concrete
// columns, cascading each group's shift onto the rest of its line — since
// align.Stack.Flush links members into a chain without ever writing a
// resolved column itself (spec.md section 3.3: "Align records ... column
// resolution is the Indenter's job").
package indent

import (
	"unicode/utf8"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// Run computes Column/ColumnIndent for every chunk in s.
func Run(ctx *cpd.Context, s *chunk.Store) {
	st := newState(ctx.Options)
	s.Each(func(c *chunk.Chunk) bool {
		st.visit(s, c)
		return true
	})
	resolveAlignGroups(s)
}

func chunkWidth(c *chunk.Chunk) int {
	return utf8.RuneCountInString(c.Text)
}

func isNewlineKind(k token.Kind) bool {
	return k == token.KindNewline || k == token.KindNewlineCont
}

// state carries the options this pass reads plus the running cursor
// (current column, current line's brace-kind stack, last comment column)
// across the single forward walk.
type state struct {
	indentColumns  int
	indentContinue int
	namespaceOn    bool
	accessSpec     int
	label          int
	col1Comment    bool
	ppIndent       options.PositionBitmask
	ppIndentCount  int

	col          int
	lineStart    bool
	braceStack   []token.Kind
	lastBlockCol int
}

func newState(opts options.Provider) *state {
	return &state{
		indentColumns:  int(opts.Unsigned("indent_columns")),
		indentContinue: opts.Signed("indent_continue"),
		namespaceOn:    opts.Bool("indent_namespace"),
		accessSpec:     opts.Signed("indent_access_spec"),
		label:          opts.Signed("indent_label"),
		col1Comment:    opts.Bool("indent_col1_comment"),
		ppIndent:       opts.Position("pp_indent"),
		ppIndentCount:  int(opts.Unsigned("pp_indent_count")),
		col:            1,
		lineStart:      true,
	}
}

func (st *state) visit(s *chunk.Store, c *chunk.Chunk) {
	if isNewlineKind(c.Type) {
		c.Column = st.col
		c.ColumnIndent = st.col
		st.lineStart = true
		return
	}

	if token.IsBraceClose(c.Type) {
		st.popBrace()
	}

	var natural int
	if st.lineStart {
		natural = st.naturalColumn(s, c)
		st.lineStart = false
	} else {
		prev := s.Prev(c)
		gap := 0
		if c.OrigPrevSp {
			gap = 1
		}
		natural = prev.Column + chunkWidth(prev) + gap
	}

	if c.Flags.Has(token.FlagDontIndent) {
		st.col = c.Column
	} else {
		st.col = natural
		c.Column = natural
		c.ColumnIndent = natural
	}

	if token.IsBraceOpen(c.Type) {
		st.pushBrace(c.Type)
	}
}

func (st *state) pushBrace(k token.Kind) { st.braceStack = append(st.braceStack, k) }

func (st *state) popBrace() {
	if len(st.braceStack) > 0 {
		st.braceStack = st.braceStack[:len(st.braceStack)-1]
	}
}

// effectiveDepth is the brace nesting depth used for indentation: every
// enclosing brace counts, except a namespace brace when indent_namespace
// is off (a common house style keeps a namespace's body flush with its
// declaration to save horizontal space across a whole file).
func (st *state) effectiveDepth() int {
	if st.namespaceOn {
		return len(st.braceStack)
	}
	d := 0
	for _, k := range st.braceStack {
		if k == token.KindBraceOpenNamespace {
			continue
		}
		d++
	}
	return d
}

// naturalColumn picks the first matching rule for a line-starting chunk c,
// most specific first: an explicit continuation line from package split,
// a preprocessor directive, a comment, an access-specifier or label, and
// finally the ordinary brace-depth formula. An opening brace that starts
// its own line (Allman style) reports its own Level/BraceLevel already
// incremented by package levels (levels.Run's documented "opener reports
// post-push" convention), so effectiveDepth is read before pushBrace runs
// for this chunk — naturally giving the brace the same column as the
// statement it belongs to.
func (st *state) naturalColumn(s *chunk.Store, c *chunk.Chunk) int {
	if c.Flags.Has(token.FlagContinuationLine) {
		col := c.BraceLevel*st.indentColumns + absInt(st.indentContinue) + 1
		return col
	}

	if col, ok := st.ppColumn(c); ok {
		return col
	}

	if token.IsComment(c.Type) {
		switch c.Type {
		case token.KindCommentMulti:
			if st.lastBlockCol > 0 {
				return st.lastBlockCol
			}
		default:
			if !st.col1Comment && c.OrigCol == 1 {
				return 1
			}
		}
	}

	if isAccessSpecifier(s, c) {
		return st.offsetColumn(st.accessSpec)
	}
	if isLabelStart(s, c) {
		return st.offsetColumn(st.label)
	}

	col := st.effectiveDepth()*st.indentColumns + 1

	if c.Type == token.KindCommentBlock || c.Type == token.KindCommentDoc {
		st.lastBlockCol = col
	}

	return col
}

// offsetColumn interprets a signed indent_access_spec/indent_label style
// option: a positive value is an absolute output column; zero or negative
// is an offset, in indent_columns units, applied to the normal brace-depth
// column (e.g. -1 pulls the label back one level from its enclosing
// members, the conventional "one level out" access-specifier style).
func (st *state) offsetColumn(v int) int {
	if v > 0 {
		return v
	}
	col := st.effectiveDepth()*st.indentColumns + 1 + v*st.indentColumns
	if col < 1 {
		col = 1
	}
	return col
}

func (st *state) ppColumn(c *chunk.Chunk) (int, bool) {
	if !c.Flags.Has(token.FlagInPreprocessor) || !isPPDirectiveKind(c.Type) {
		return 0, false
	}
	switch st.ppIndent {
	case options.PosColumn1:
		return 1, true
	case options.PosFollowPrev, options.PosAlignNext:
		col := 1 + st.ppIndentCount*(c.PPLevel-1)
		if col < 1 {
			col = 1
		}
		return col, true
	default:
		return 0, false
	}
}

func isPPDirectiveKind(k token.Kind) bool {
	switch k {
	case token.KindPPHash, token.KindPPInclude, token.KindPPDefine, token.KindPPUndef,
		token.KindPPIf, token.KindPPIfdef, token.KindPPIfndef, token.KindPPElse,
		token.KindPPElif, token.KindPPEndif, token.KindPPPragma, token.KindPPError,
		token.KindPPWarning, token.KindPPOther:
		return true
	}
	return false
}

func isAccessSpecifier(s *chunk.Store, c *chunk.Chunk) bool {
	switch c.Type {
	case token.KindKeywordPublic, token.KindKeywordPrivate, token.KindKeywordProtected:
	default:
		return false
	}
	return s.NextNNL(c).Type == token.KindAccessColon
}

func isLabelStart(s *chunk.Store, c *chunk.Chunk) bool {
	return c.Type == token.KindLabel && s.NextNNL(c).Type == token.KindLabelColon
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
