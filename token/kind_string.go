package token

var kindNames = map[Kind]string{
	KindNone:            "NONE",
	KindIdent:           "IDENT",
	KindKeyword:         "KEYWORD",
	KindType:            "TYPE",
	KindQualifier:       "QUALIFIER",
	KindNumber:          "NUMBER",
	KindString:          "STRING",
	KindStringMultiline: "STRING_MULTILINE",
	KindIStringPrefix:   "STRING_PREFIX",
	KindChar:            "CHAR",
	KindUserLit:         "USER_LITERAL",
	KindCommentLine:     "COMMENT_LINE",
	KindCommentBlock:    "COMMENT_BLOCK",
	KindCommentDoc:      "COMMENT_DOC",
	KindCommentMulti:    "COMMENT_MULTI",
	KindCommentEmbed:    "COMMENT_EMBED",
	KindWhitespace:      "WHITESPACE",
	KindNewline:         "NEWLINE",
	KindNewlineCont:     "NL_CONT",
	KindVBrace:          "VBRACE",
	KindEOF:             "EOF",
	KindBraceOpen:       "BRACE_OPEN",
	KindBraceClose:      "BRACE_CLOSE",
	KindParenOpen:       "PAREN_OPEN",
	KindParenClose:      "PAREN_CLOSE",
	KindSquareOpen:      "SQUARE_OPEN",
	KindSquareClose:     "SQUARE_CLOSE",
	KindAngleOpen:       "ANGLE_OPEN",
	KindAngleClose:      "ANGLE_CLOSE",
	KindVSemicolon:      "VSEMICOLON",
	KindSemicolon:       "SEMICOLON",
	KindComma:           "COMMA",
	KindColon:           "COLON",
	KindDoubleColon:     "DOUBLE_COLON",
	KindQuestion:        "QUESTION",
	KindCondColon:       "COND_COLON",
	KindArith:           "ARITH",
	KindArithPlus:       "ARITH_PLUS",
	KindArithMinus:      "ARITH_MINUS",
	KindStar:            "STAR",
	KindAmp:             "AMP",
	KindDoubleAmp:       "DOUBLE_AMP",
	KindBoolOr:          "BOOL_OR",
	KindCompare:         "COMPARE",
	KindAngleCompareLT:  "COMPARE_LT",
	KindAngleCompareGT:  "COMPARE_GT",
	KindShiftLeft:       "SHIFT_LEFT",
	KindShiftRight:      "SHIFT_RIGHT",
	KindCaret:           "CARET",
	KindPipe:            "PIPE",
	KindTilde:           "TILDE",
	KindNot:             "NOT",
	KindAssign:          "ASSIGN",
	KindAssignOp:        "ASSIGN_OP",
	KindArrow:           "ARROW",
	KindArrowStar:       "ARROW_STAR",
	KindDot:             "DOT",
	KindDotStar:         "DOT_STAR",
	KindEllipsis:        "ELLIPSIS",
	KindScopeRes:        "SCOPE_RES",

	KindPPHash:          "PP_HASH",
	KindPPInclude:       "PP_INCLUDE",
	KindPPDefine:        "PP_DEFINE",
	KindPPUndef:         "PP_UNDEF",
	KindPPIf:            "PP_IF",
	KindPPIfdef:         "PP_IFDEF",
	KindPPIfndef:        "PP_IFNDEF",
	KindPPElse:          "PP_ELSE",
	KindPPElif:          "PP_ELIF",
	KindPPEndif:         "PP_ENDIF",
	KindPPPragma:        "PP_PRAGMA",
	KindPPError:         "PP_ERROR",
	KindPPWarning:       "PP_WARNING",
	KindPPOther:         "PP_OTHER",
	KindPPBody:          "PP_BODY",
	KindPPDefinedParen:  "PP_DEFINED_PAREN",

	KindFParenOpen:             "FPAREN_OPEN",
	KindFParenClose:            "FPAREN_CLOSE",
	KindLParenOpen:             "LPAREN_OPEN",
	KindLParenClose:            "LPAREN_CLOSE",
	KindSParenOpen:             "SPAREN_OPEN",
	KindSParenClose:            "SPAREN_CLOSE",
	KindTParenOpen:             "TPAREN_OPEN",
	KindTParenClose:            "TPAREN_CLOSE",
	KindCastParenOpen:          "CAST_PAREN_OPEN",
	KindCastParenClose:         "CAST_PAREN_CLOSE",
	KindMacroFuncCallParenOpen: "MACRO_CALL_PAREN_OPEN",
	KindMacroFuncCallParenClose: "MACRO_CALL_PAREN_CLOSE",

	KindFuncProto:      "FUNC_PROTO",
	KindFuncDef:        "FUNC_DEF",
	KindFuncCall:       "FUNC_CALL",
	KindFuncCallUser:   "FUNC_CALL_USER",
	KindFuncClassDef:   "FUNC_CLASS_DEF",
	KindFuncClassProto: "FUNC_CLASS_PROTO",
	KindFuncClassCall:  "FUNC_CLASS_CALL",
	KindFuncCtorVar:    "FUNC_CTOR_VAR",
	KindFuncVar:        "FUNC_VAR",

	KindBraceOpenFunc:       "BRACE_OPEN_FUNC",
	KindBraceCloseFunc:      "BRACE_CLOSE_FUNC",
	KindBraceOpenIf:         "BRACE_OPEN_IF",
	KindBraceCloseIf:        "BRACE_CLOSE_IF",
	KindBraceOpenElse:       "BRACE_OPEN_ELSE",
	KindBraceCloseElse:      "BRACE_CLOSE_ELSE",
	KindBraceOpenSwitch:     "BRACE_OPEN_SWITCH",
	KindBraceCloseSwitch:    "BRACE_CLOSE_SWITCH",
	KindBraceOpenNamespace:  "BRACE_OPEN_NAMESPACE",
	KindBraceCloseNamespace: "BRACE_CLOSE_NAMESPACE",
	KindBraceOpenClass:      "BRACE_OPEN_CLASS",
	KindBraceCloseClass:     "BRACE_CLOSE_CLASS",
	KindBraceOpenEnum:       "BRACE_OPEN_ENUM",
	KindBraceCloseEnum:      "BRACE_CLOSE_ENUM",
	KindBraceOpenStruct:     "BRACE_OPEN_STRUCT",
	KindBraceCloseStruct:    "BRACE_CLOSE_STRUCT",
	KindBraceOpenUnion:      "BRACE_OPEN_UNION",
	KindBraceCloseUnion:     "BRACE_CLOSE_UNION",
	KindBraceOpenTry:        "BRACE_OPEN_TRY",
	KindBraceCloseTry:       "BRACE_CLOSE_TRY",
	KindBraceOpenCatch:      "BRACE_OPEN_CATCH",
	KindBraceCloseCatch:     "BRACE_CLOSE_CATCH",
	KindBraceOpenDo:         "BRACE_OPEN_DO",
	KindBraceCloseDo:        "BRACE_CLOSE_DO",
	KindBraceOpenWhile:      "BRACE_OPEN_WHILE",
	KindBraceCloseWhile:     "BRACE_CLOSE_WHILE",
	KindBraceOpenFor:        "BRACE_OPEN_FOR",
	KindBraceCloseFor:       "BRACE_CLOSE_FOR",
	KindBraceInit:           "BRACE_INIT",

	KindAngleOpenTemplate:  "ANGLE_OPEN_TEMPLATE",
	KindAngleCloseTemplate: "ANGLE_CLOSE_TEMPLATE",
	KindAngleOpenGeneric:   "ANGLE_OPEN_GENERIC",
	KindAngleCloseGeneric:  "ANGLE_CLOSE_GENERIC",

	KindKeywordIf:        "KW_IF",
	KindKeywordElse:      "KW_ELSE",
	KindKeywordElseIf:    "KW_ELSEIF",
	KindKeywordFor:       "KW_FOR",
	KindKeywordWhile:     "KW_WHILE",
	KindKeywordDo:        "KW_DO",
	KindKeywordSwitch:    "KW_SWITCH",
	KindKeywordCase:      "KW_CASE",
	KindKeywordDefault:   "KW_DEFAULT",
	KindKeywordReturn:    "KW_RETURN",
	KindKeywordBreak:     "KW_BREAK",
	KindKeywordContinue:  "KW_CONTINUE",
	KindKeywordGoto:      "KW_GOTO",
	KindKeywordClass:     "KW_CLASS",
	KindKeywordStruct:    "KW_STRUCT",
	KindKeywordUnion:     "KW_UNION",
	KindKeywordEnum:      "KW_ENUM",
	KindKeywordNamespace: "KW_NAMESPACE",
	KindKeywordTemplate:  "KW_TEMPLATE",
	KindKeywordTypedef:   "KW_TYPEDEF",
	KindKeywordUsing:     "KW_USING",
	KindKeywordTry:       "KW_TRY",
	KindKeywordCatch:     "KW_CATCH",
	KindKeywordThrow:     "KW_THROW",
	KindKeywordNew:       "KW_NEW",
	KindKeywordDelete:    "KW_DELETE",
	KindKeywordSizeof:    "KW_SIZEOF",
	KindKeywordDecltype:  "KW_DECLTYPE",
	KindKeywordOperator:  "KW_OPERATOR",
	KindKeywordPublic:    "KW_PUBLIC",
	KindKeywordPrivate:   "KW_PRIVATE",
	KindKeywordProtected: "KW_PROTECTED",
	KindKeywordStatic:    "KW_STATIC",
	KindKeywordConst:     "KW_CONST",
	KindKeywordVirtual:   "KW_VIRTUAL",
	KindKeywordOverride:  "KW_OVERRIDE",
	KindKeywordFinal:     "KW_FINAL",
	KindKeywordAsm:       "KW_ASM",

	KindOCMsgSpec:    "OC_MSG_SPEC",
	KindOCMsgName:    "OC_MSG_NAME",
	KindOCColon:      "OC_COLON",
	KindOCAt:         "OC_AT",
	KindOCBlockCaret: "OC_BLOCK_CARET",

	KindLabel:         "LABEL",
	KindLabelColon:    "LABEL_COLON",
	KindAccessColon:   "ACCESS_COLON",
	KindCaseColon:     "CASE_COLON",
	KindDefaultColon:  "DEFAULT_COLON",

	KindVarTypeWord:   "VAR_TYPE_WORD",
	KindVarDefFirst:   "VAR_DEF_FIRST",
	KindVarDefInline:  "VAR_DEF_INLINE",
	KindFuncParamName: "FUNC_PARAM_NAME",

	KindParamPack:  "PARAM_PACK",
	KindForwardRef: "FORWARD_REF",

	KindAttribute: "ATTRIBUTE",
}

// String renders k using its fixed name table; unknown kinds (which cannot
// occur in a correctly-built binary, since the enum is closed at build
// time) render as the fixed placeholder "KIND(?)" for diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "KIND(?)"
}
