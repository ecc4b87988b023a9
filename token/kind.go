// Package token defines the closed, build-time-fixed vocabulary of chunk
// kinds, the PCF (per-chunk-flag) bitset, and the logger severity
// enumeration that the rest of chunkfmt is built on.
//
// The kind set deliberately stays a plain sum type (a Kind constant plus a
// Stringer), matching the design note in spec.md section 9: "the token
// kind must be extensible only at build time; runtime additions are not
// supported".
package token

// Kind tags the lexical/semantic role of a chunk. Every chunk carries
// exactly one Kind, and exactly one ParentKind (also a Kind value) that
// answers "what construct am I part of".
type Kind int

//go:generate stringer -type=Kind
const (
	// KindNone is the zero value; the null chunk and never-classified
	// chunks report this.
	KindNone Kind = iota

	// --- identifiers & literals ---
	KindIdent
	KindKeyword
	KindType
	KindQualifier // volatile, mutable, inline, extern, restrict, ...
	KindNumber
	KindString
	KindStringMultiline // raw string / here-doc continuation body
	KindIStringPrefix   // wide/u8/u/U/L string literal prefix
	KindChar
	KindUserLit // user-defined literal suffix (123_km, "foo"_s)

	// --- comments ---
	KindCommentLine
	KindCommentBlock
	KindCommentDoc     // /** ... */ or /// ...
	KindCommentMulti   // continuation line of a block comment
	KindCommentEmbed   // a comment embedded inside another construct

	// --- whitespace / structure ---
	KindWhitespace
	KindNewline
	KindNewlineCont // "\\\n" inside a preprocessor body
	KindVBrace      // virtual (invisible) brace, inserted for single-statement bodies
	KindEOF

	// --- punctuators: braces/parens/brackets/angles, generic ---
	KindBraceOpen
	KindBraceClose
	KindParenOpen
	KindParenClose
	KindSquareOpen
	KindSquareClose
	KindAngleOpen
	KindAngleClose
	KindVSemicolon // virtual semicolon (some languages allow omission)
	KindSemicolon
	KindComma
	KindColon
	KindDoubleColon
	KindQuestion
	KindCondColon // the ':' half of a ternary, once matched to its '?'

	// --- operators (generic until Combiner refines) ---
	KindArith     // % / (other binary arithmetic; + - are KindArithPlus/KindArithMinus)
	KindArithPlus
	KindArithMinus
	KindStar          // '*': multiply / pointer-declarator / deref, refined later
	KindAmp           // '&': bitwise-and / address-of / reference, refined later
	KindDoubleAmp     // '&&': boolean-and / rvalue-reference, refined later
	KindBoolOr
	KindCompare  // == != <= >= (not < >, those are angle/compare separately)
	KindAngleCompareLT // '<' resolved as less-than
	KindAngleCompareGT // '>' resolved as greater-than
	KindShiftLeft
	KindShiftRight
	KindCaret
	KindPipe
	KindTilde
	KindNot
	KindAssign
	KindAssignOp // += -= *= /= etc.
	KindArrow      // '->'
	KindArrowStar  // '->*'
	KindDot
	KindDotStar
	KindEllipsis // '...'
	KindScopeRes

	// --- preprocessor ---
	KindPPHash
	KindPPInclude
	KindPPDefine
	KindPPUndef
	KindPPIf
	KindPPIfdef
	KindPPIfndef
	KindPPElse
	KindPPElif
	KindPPEndif
	KindPPPragma
	KindPPError
	KindPPWarning
	KindPPOther
	KindPPBody // generic token inside a preprocessor directive's body
	KindPPDefinedParen

	// --- role tags: parens, refined by the Combiner ---
	KindFParenOpen // function-related '(' before refinement of its parent
	KindFParenClose
	KindLParenOpen // control-statement '(' (if/for/while/switch/catch)
	KindLParenClose
	KindSParenOpen // sizeof/decltype/alignof '('
	KindSParenClose
	KindTParenOpen // typedef-wrapping '('
	KindTParenClose
	KindCastParenOpen
	KindCastParenClose
	KindMacroFuncCallParenOpen
	KindMacroFuncCallParenClose

	// --- function role tags ---
	KindFuncProto
	KindFuncDef
	KindFuncCall
	KindFuncCallUser
	KindFuncClassDef
	KindFuncClassProto
	KindFuncClassCall
	KindFuncCtorVar
	KindFuncVar // a function pointer variable/typedef name

	// --- brace role tags ---
	KindBraceOpenFunc
	KindBraceCloseFunc
	KindBraceOpenIf
	KindBraceCloseIf
	KindBraceOpenElse
	KindBraceCloseElse
	KindBraceOpenSwitch
	KindBraceCloseSwitch
	KindBraceOpenNamespace
	KindBraceCloseNamespace
	KindBraceOpenClass
	KindBraceCloseClass
	KindBraceOpenEnum
	KindBraceCloseEnum
	KindBraceOpenStruct
	KindBraceCloseStruct
	KindBraceOpenUnion
	KindBraceCloseUnion
	KindBraceOpenTry
	KindBraceCloseTry
	KindBraceOpenCatch
	KindBraceCloseCatch
	KindBraceOpenDo
	KindBraceCloseDo
	KindBraceOpenWhile
	KindBraceCloseWhile
	KindBraceOpenFor
	KindBraceCloseFor
	KindBraceInit // braced-init-list '{'/'}' (aggregate/brace-init, Eigen-style)

	// --- angle role tags ---
	KindAngleOpenTemplate
	KindAngleCloseTemplate
	KindAngleOpenGeneric // C#/Java generics, Vala generics
	KindAngleCloseGeneric

	// --- keyword-kinds (selected; the rest stay KindKeyword) ---
	KindKeywordIf
	KindKeywordElse
	KindKeywordElseIf
	KindKeywordFor
	KindKeywordWhile
	KindKeywordDo
	KindKeywordSwitch
	KindKeywordCase
	KindKeywordDefault
	KindKeywordReturn
	KindKeywordBreak
	KindKeywordContinue
	KindKeywordGoto
	KindKeywordClass
	KindKeywordStruct
	KindKeywordUnion
	KindKeywordEnum
	KindKeywordNamespace
	KindKeywordTemplate
	KindKeywordTypedef
	KindKeywordUsing
	KindKeywordTry
	KindKeywordCatch
	KindKeywordThrow
	KindKeywordNew
	KindKeywordDelete
	KindKeywordSizeof
	KindKeywordDecltype
	KindKeywordOperator
	KindKeywordPublic
	KindKeywordPrivate
	KindKeywordProtected
	KindKeywordStatic
	KindKeywordConst
	KindKeywordVirtual
	KindKeywordOverride
	KindKeywordFinal
	KindKeywordAsm

	// --- ObjC-specific ---
	KindOCMsgSpec   // '-'/'+' at the start of a method declaration
	KindOCMsgName   // a colon-terminated selector segment
	KindOCColon     // message-send ':' separator
	KindOCAt        // '@' directive sigil (@interface, @property, ...)
	KindOCBlockCaret

	// --- labels / access specifiers ---
	KindLabel
	KindLabelColon
	KindAccessColon
	KindCaseColon
	KindDefaultColon

	// --- variable-def role tags (set by the Combiner) ---
	KindVarTypeWord   // a type token that begins a variable-definition group
	KindVarDefFirst   // the first declared identifier of the group
	KindVarDefInline  // subsequent identifiers after a comma in the same group
	KindFuncParamName // a parameter name inside a function's parameter list

	// --- parameter packs / forwarding ---
	KindParamPack
	KindForwardRef

	// --- attributes / annotations ---
	KindAttribute // [[...]], __attribute__((...)), Java/C# [Attr]

	kindCount
)

// Count returns the number of distinct Kind values in the closed
// enumeration, for tests that need to iterate or size arrays.
func Count() int { return int(kindCount) }

// IsOpener reports whether k is a token that increases nesting level.
//
// Angle brackets ('<'/'>', in any of their generic/template/generic-type
// forms) deliberately do NOT participate in the generic Level count: the
// Brace-Level Analyzer (package levels) runs before the Combiner resolves
// whether a given '<' is a template bracket or a less-than comparison
// (spec.md section 2's L4-before-L5 ordering), so by the time the level
// pass sees a '<' it cannot yet tell the two apart. Counting every '<' as
// an opener would corrupt the level of every ordinary comparison
// expression. The Combiner instead tracks template-bracket nesting with
// its own independent scan; downstream stages that care about a
// construct's brace/paren depth are unaffected, since angle brackets never
// change which braces/parens enclose a chunk.
func IsOpener(k Kind) bool {
	switch k {
	case KindBraceOpen, KindParenOpen, KindSquareOpen,
		KindFParenOpen, KindLParenOpen, KindSParenOpen, KindTParenOpen,
		KindCastParenOpen, KindMacroFuncCallParenOpen,
		KindBraceOpenFunc, KindBraceOpenIf, KindBraceOpenElse, KindBraceOpenSwitch,
		KindBraceOpenNamespace, KindBraceOpenClass, KindBraceOpenEnum,
		KindBraceOpenStruct, KindBraceOpenUnion, KindBraceOpenTry, KindBraceOpenCatch,
		KindBraceOpenDo, KindBraceOpenWhile, KindBraceOpenFor, KindBraceInit:
		return true
	}
	return false
}

// IsCloser reports whether k is a token that decreases nesting level. See
// IsOpener for why angle brackets are excluded.
func IsCloser(k Kind) bool {
	switch k {
	case KindBraceClose, KindParenClose, KindSquareClose,
		KindFParenClose, KindLParenClose, KindSParenClose, KindTParenClose,
		KindCastParenClose, KindMacroFuncCallParenClose,
		KindBraceCloseFunc, KindBraceCloseIf, KindBraceCloseElse, KindBraceCloseSwitch,
		KindBraceCloseNamespace, KindBraceCloseClass, KindBraceCloseEnum,
		KindBraceCloseStruct, KindBraceCloseUnion, KindBraceCloseTry, KindBraceCloseCatch,
		KindBraceCloseDo, KindBraceCloseWhile, KindBraceCloseFor:
		return true
	}
	return false
}

// IsBraceOpen/IsBraceClose narrow IsOpener/IsCloser to '{'/'}' role tags
// only (used by the brace-level pass, which tracks brace_level separately
// from the generic level).
func IsBraceOpen(k Kind) bool {
	switch k {
	case KindBraceOpen, KindBraceOpenFunc, KindBraceOpenIf, KindBraceOpenElse,
		KindBraceOpenSwitch, KindBraceOpenNamespace, KindBraceOpenClass,
		KindBraceOpenEnum, KindBraceOpenStruct, KindBraceOpenUnion,
		KindBraceOpenTry, KindBraceOpenCatch, KindBraceOpenDo, KindBraceOpenWhile,
		KindBraceOpenFor, KindBraceInit:
		return true
	}
	return false
}

// IsBraceClose is the closing-brace analogue of IsBraceOpen.
func IsBraceClose(k Kind) bool {
	switch k {
	case KindBraceClose, KindBraceCloseFunc, KindBraceCloseIf, KindBraceCloseElse,
		KindBraceCloseSwitch, KindBraceCloseNamespace, KindBraceCloseClass,
		KindBraceCloseEnum, KindBraceCloseStruct, KindBraceCloseUnion,
		KindBraceCloseTry, KindBraceCloseCatch, KindBraceCloseDo, KindBraceCloseWhile,
		KindBraceCloseFor:
		return true
	}
	return false
}

// IsComment reports any of the comment variants.
func IsComment(k Kind) bool {
	switch k {
	case KindCommentLine, KindCommentBlock, KindCommentDoc, KindCommentMulti, KindCommentEmbed:
		return true
	}
	return false
}

// IsWhitespaceOrNewline reports whitespace, newline, or newline-continuation.
func IsWhitespaceOrNewline(k Kind) bool {
	switch k {
	case KindWhitespace, KindNewline, KindNewlineCont:
		return true
	}
	return false
}

// IsParenOpenAny reports any of the '(' role-tag kinds sharing paren nesting.
func IsParenOpenAny(k Kind) bool {
	switch k {
	case KindParenOpen, KindFParenOpen, KindLParenOpen, KindSParenOpen,
		KindTParenOpen, KindCastParenOpen, KindMacroFuncCallParenOpen:
		return true
	}
	return false
}

func IsParenCloseAny(k Kind) bool {
	switch k {
	case KindParenClose, KindFParenClose, KindLParenClose, KindSParenClose,
		KindTParenClose, KindCastParenClose, KindMacroFuncCallParenClose:
		return true
	}
	return false
}
