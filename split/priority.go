package split

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// priTable mirrors original_source's width.cpp pri_table: the lower a
// chunk's priority, the more strongly the splitter prefers to break there.
// Zero (the map's absent value) means "never a split point".
//
// original_source also lists CT_FOR_COLON at priority 11; this token kind
// has no analogue in this tree's closed Kind enumeration (no dedicated
// for-statement colon exists, since this codebase's for-loops use ordinary
// KindSemicolon separators), so that entry is omitted rather than
// approximated onto an unrelated kind.
var priTable = map[token.Kind]int{
	token.KindSemicolon: 1,
	token.KindComma:     2,

	token.KindDoubleAmp: 3,
	token.KindBoolOr:    3,

	token.KindCompare:        4,
	token.KindAngleCompareLT: 4,
	token.KindAngleCompareGT: 4,

	token.KindShiftLeft:  5,
	token.KindShiftRight: 5,

	token.KindArith:      6,
	token.KindArithPlus:  6,
	token.KindArithMinus: 6,

	token.KindCaret: 7,

	token.KindAssign:   9,
	token.KindAssignOp: 9,

	token.KindString: 10,

	token.KindQuestion:  20,
	token.KindCondColon: 20,

	// token.KindFParenOpen is handled separately by splitPriority, since its
	// priority depends on indent_continue's sign (see splitPriority).

	token.KindQualifier:     25,
	token.KindKeywordClass:  25,
	token.KindKeywordStruct: 25,
	token.KindType:          25,
}

// splitPriority reports pc's split priority, or 0 if pc is never a split
// point. fparenPri is 21 normally, promoted to 8 (ahead of assignment) when
// indent_continue is negative, per original_source's do_code_width: "a
// negative indent_continue means function-call parens split before
// assignments do".
func splitPriority(pc *chunk.Chunk, fparenPri int) int {
	if pc.Type == token.KindFParenOpen {
		return fparenPri
	}
	return priTable[pc.Type]
}

// posLead reports whether pc's split point should place the operator at
// the start of the continuation line ("lead") rather than at the end of
// the line being split ("trail"), per the pos_* IARF-style string options
// original_source exposes as a TP_LEAD bit on each priority-table entry.
// Kinds outside the six configurable families keep the original's
// hard-coded trail placement (a comma, semicolon, or qualified-type word
// never starts a continuation line).
func posLead(pc *chunk.Chunk, opts options.Provider) bool {
	switch pc.Type {
	case token.KindArith, token.KindArithPlus, token.KindArithMinus:
		return opts.String("pos_arith") == "lead"
	case token.KindShiftLeft, token.KindShiftRight:
		return opts.String("pos_shift") == "lead"
	case token.KindAssign, token.KindAssignOp:
		return opts.String("pos_assign") == "lead"
	case token.KindCompare, token.KindAngleCompareLT, token.KindAngleCompareGT:
		return opts.String("pos_compare") == "lead"
	case token.KindQuestion, token.KindCondColon:
		return opts.String("pos_conditional") == "lead"
	case token.KindDoubleAmp, token.KindBoolOr, token.KindCaret:
		return opts.String("pos_bool") == "lead"
	default:
		return false
	}
}
