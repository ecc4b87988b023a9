package lexer

import (
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/token"
)

// punct describes one entry of the maximum-munch punctuator table (spec.md
// section 4.2, "Maximum-munch punctuator match"): a literal spelling, the
// Kind it initially produces, and the language mask it is valid under.
type punct struct {
	text string
	kind token.Kind
	lang langflags.Mask
}

// allLangs is shorthand for "valid under every supported language".
const allLangs = langflags.All

// punctTables holds one table per spelling length, indexed by that length;
// matchPunct tries 4 characters before falling back to 3, and so on down
// to 1 — the maximum-munch rule.
var punctTables = [6][]punct{
	5: { // length-6 handled in same bucket index 5 for shift convenience (none needed today)
	},
	4: {
		{"<<<=", token.KindAssignOp, langflags.LangD},
		{">>>=", token.KindAssignOp, langflags.LangJava | langflags.LangECMA},
	},
	3: {
		{">>>", token.KindShiftRight, langflags.LangJava | langflags.LangECMA},
		{"...", token.KindEllipsis, allLangs},
		{"->*", token.KindArrowStar, langflags.LangCPP},
		{"<<=", token.KindAssignOp, allLangs},
		{">>=", token.KindAssignOp, allLangs},
		{"<=>", token.KindCompare, langflags.LangCPP},
		{"!<=", token.KindCompare, langflags.LangD},
		{"!>=", token.KindCompare, langflags.LangD},
		{"??=", token.KindAssignOp, langflags.LangCS},
	},
	2: {
		{"::", token.KindScopeRes, langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangVala},
		{"->", token.KindArrow, allLangs},
		{"++", token.KindAssignOp, allLangs},
		{"--", token.KindAssignOp, allLangs},
		{"<<", token.KindShiftLeft, allLangs},
		{">>", token.KindShiftRight, allLangs},
		{"<=", token.KindCompare, allLangs},
		{">=", token.KindCompare, allLangs},
		{"==", token.KindCompare, allLangs},
		{"!=", token.KindCompare, allLangs},
		{"&&", token.KindDoubleAmp, allLangs},
		{"||", token.KindBoolOr, allLangs},
		{"+=", token.KindAssignOp, allLangs},
		{"-=", token.KindAssignOp, allLangs},
		{"*=", token.KindAssignOp, allLangs},
		{"/=", token.KindAssignOp, allLangs},
		{"%=", token.KindAssignOp, allLangs},
		{"&=", token.KindAssignOp, allLangs},
		{"|=", token.KindAssignOp, allLangs},
		{"^=", token.KindAssignOp, allLangs},
		{"??", token.KindCompare, langflags.LangCS | langflags.LangD},
		{"?.", token.KindDot, langflags.LangCS | langflags.LangECMA},
		{"=>", token.KindArrow, langflags.LangCS | langflags.LangJava | langflags.LangECMA},
		{"..", token.KindEllipsis, langflags.LangD | langflags.LangVala},
		{"##", token.KindPPOther, allLangs},
		{"<:", token.KindSquareOpen, langflags.LangCPP | langflags.LangDigraph},
		{":>", token.KindSquareClose, langflags.LangCPP | langflags.LangDigraph},
		{"<%", token.KindBraceOpen, langflags.LangCPP | langflags.LangDigraph},
		{"%>", token.KindBraceClose, langflags.LangCPP | langflags.LangDigraph},
		{"%:", token.KindPPHash, langflags.LangCPP | langflags.LangDigraph},
	},
	1: {
		{"{", token.KindBraceOpen, allLangs},
		{"}", token.KindBraceClose, allLangs},
		{"(", token.KindParenOpen, allLangs},
		{")", token.KindParenClose, allLangs},
		{"[", token.KindSquareOpen, allLangs},
		{"]", token.KindSquareClose, allLangs},
		{"<", token.KindAngleOpen, allLangs},
		{">", token.KindAngleClose, allLangs},
		{";", token.KindSemicolon, allLangs},
		{",", token.KindComma, allLangs},
		{":", token.KindColon, allLangs},
		{"?", token.KindQuestion, allLangs},
		{"+", token.KindArithPlus, allLangs},
		{"-", token.KindArithMinus, allLangs},
		{"*", token.KindStar, allLangs},
		{"&", token.KindAmp, allLangs},
		{"|", token.KindPipe, allLangs},
		{"^", token.KindCaret, allLangs},
		{"~", token.KindTilde, allLangs},
		{"!", token.KindNot, allLangs},
		{"=", token.KindAssign, allLangs},
		{"%", token.KindArith, allLangs},
		{"/", token.KindArith, allLangs},
		{".", token.KindDot, allLangs},
		{"#", token.KindPPHash, allLangs &^ (langflags.LangJava | langflags.LangCS)},
		{"@", token.KindOCAt, langflags.LangOC | langflags.LangCS},
		{"$", token.KindIdent, langflags.LangECMA},
	},
}

// matchPunct performs the maximum-munch table scan described in spec.md
// section 4.2: check the 4/3/2/1-character tables in that order and
// accept the longest whose lang mask intersects lang.
func matchPunct(src []byte, pos int, lang langflags.Mask) (punct, int, bool) {
	maxLen := len(src) - pos
	for length := 4; length >= 1; length-- {
		if length > maxLen {
			continue
		}
		candidate := string(src[pos : pos+length])
		for _, p := range punctTables[length] {
			if p.text == candidate && p.lang.Any(lang) {
				return p, length, true
			}
		}
	}
	return punct{}, 0, false
}
