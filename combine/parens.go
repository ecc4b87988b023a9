package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// controlKeywordParen maps the keyword that introduces a control-statement
// paren to true; these parens get the generic "LParen" role (spec.md
// section 4.5's paren-role table) regardless of what's inside them.
var controlKeywordParen = map[token.Kind]bool{
	token.KindKeywordIf:     true,
	token.KindKeywordFor:    true,
	token.KindKeywordWhile:  true,
	token.KindKeywordSwitch: true,
	token.KindKeywordCatch:  true,
}

// classifyParens retags every '(' / ')' pair into one of the ~15 role
// kinds spec.md section 4.5 names: control-statement (LParen), sizeof/
// decltype (SParen), cast (CastParen), typedef function-pointer wrapper
// (TParen), macro-call-in-preprocessor-body (MacroFuncCallParen), or one
// of the function roles (FParen, further refined to FuncDef/FuncProto/
// FuncCall/FuncCallUser by markFuncRole). Parens that match none of these
// stay plain KindParenOpen/KindParenClose (ordinary grouping/expression
// parens).
//
// Grounded in the paren-classification table informally described across
// original_source's combine*-era headers, reduced here to a single
// forward, lexical (no symbol table) pass: every decision is made from
// the tokens immediately surrounding the paren, never from semantic
// knowledge of whether an identifier names a type.
func classifyParens(s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindParenOpen {
			return true
		}
		classifyOneParen(s, c)
		return true
	})
}

func classifyOneParen(s *chunk.Store, open *chunk.Chunk) {
	close := s.GetClosingParen(open)
	prev := s.PrevNCNNL(open)

	switch {
	case controlKeywordParen[prev.Type]:
		retagParenPair(open, close, token.KindLParenOpen, token.KindLParenClose)
		if prev.Type == token.KindKeywordFor {
			markForControlParen(s, open, close)
		}
		return

	case prev.Type == token.KindKeywordSizeof || prev.Type == token.KindKeywordDecltype:
		retagParenPair(open, close, token.KindSParenOpen, token.KindSParenClose)
		return

	case open.Flags.Has(token.FlagInPreprocessor) && prev.Type == token.KindIdent && isMacroLike(prev.Text):
		retagParenPair(open, close, token.KindMacroFuncCallParenOpen, token.KindMacroFuncCallParenClose)
		markMacroArgs(s, open, close)
		return

	case looksLikeCast(s, open, close):
		retagParenPair(open, close, token.KindCastParenOpen, token.KindCastParenClose)
		return

	case looksLikeFunctionPointerWrapper(s, open):
		retagParenPair(open, close, token.KindTParenOpen, token.KindTParenClose)
		return

	case prev.Type == token.KindIdent || prev.Type == token.KindType:
		retagParenPair(open, close, token.KindFParenOpen, token.KindFParenClose)
		markFuncRole(s, open, close, prev)
		return
	}
}

func retagParenPair(open, close *chunk.Chunk, openKind, closeKind token.Kind) {
	open.Type = openKind
	if !close.IsNull() {
		close.Type = closeKind
	}
}

// markForControlParen flags every chunk inside a for(...)'s control parens
// with token.FlagInFor, per spec.md section 3's PCF flag set.
func markForControlParen(s *chunk.Store, open, close *chunk.Chunk) {
	for c := s.Next(open); !c.IsNull() && c.ID() != close.ID(); c = s.Next(c) {
		c.Flags = c.Flags.Set(token.FlagInFor)
	}
}

// isMacroLike applies the conventional ALL_CAPS heuristic
// original_source's preprocessor-aware combine logic uses to guess that an
// identifier names a function-like macro rather than an ordinary function:
// every character is an upper-case letter, a digit or '_', and the name is
// longer than one character or contains a digit.
func isMacroLike(name string) bool {
	if name == "" {
		return false
	}
	sawLetter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r == '_':
			continue
		case r >= '0' && r <= '9':
			sawLetter = true
			continue
		default:
			return false
		}
	}
	return sawLetter || len(name) > 1
}

func markMacroArgs(s *chunk.Store, open, close *chunk.Chunk) {
	for c := s.Next(open); !c.IsNull() && c.ID() != close.ID(); c = s.Next(c) {
		c.Flags = c.Flags.Set(token.FlagMacroArg)
	}
}

// looksLikeCast reports "(Type)expr": the paren's body is exactly a
// type-like token run (isTypeLike: types, qualifiers, identifiers, const,
// '::', template closers, '*'/'&'/'&&'; no commas, no other operators),
// and what follows immediately
// after the closing paren starts a new unary expression rather than
// continuing a binary one.
func looksLikeCast(s *chunk.Store, open, close *chunk.Chunk) bool {
	if close.IsNull() {
		return false
	}
	body := s.NextNCNNL(open)
	if body.IsNull() || body.ID() == close.ID() {
		return false
	}
	for c := body; !c.IsNull() && c.ID() != close.ID(); c = s.NextNCNNL(c) {
		if !isTypeLike(c.Type) {
			return false
		}
	}
	after := s.NextNCNNL(close)
	switch after.Type {
	case token.KindIdent, token.KindNumber, token.KindString, token.KindChar,
		token.KindParenOpen, token.KindNot, token.KindTilde:
		return true
	}
	if isStarAmp(after.Type) {
		// "(Type)*p" / "(Type)&x": unary, still a cast.
		return true
	}
	return false
}

// looksLikeFunctionPointerWrapper reports "(*name)" / "(&name)" immediately
// followed by another '(' (the function-pointer's own parameter list) —
// the TParen role from spec.md section 4.5.
func looksLikeFunctionPointerWrapper(s *chunk.Store, open *chunk.Chunk) bool {
	first := s.NextNCNNL(open)
	if !isStarAmp(first.Type) {
		return false
	}
	name := s.NextNCNNL(first)
	if name.Type != token.KindIdent {
		return false
	}
	closeParen := s.NextNCNNL(name)
	if closeParen.Type != token.KindParenClose {
		return false
	}
	after := s.NextNCNNL(closeParen)
	return after.Type == token.KindParenOpen
}

// markFuncRole refines a generic FParen pair into FuncDef/FuncProto/
// FuncCall/FuncCallUser by looking at what follows the matching close:
// a '{' means a definition, a ';' means a prototype/declaration, anything
// else means the paren is part of a call expression. FuncCallUser (a call
// whose result is itself immediately indexed or chained) is distinguished
// from a plain FuncCall by a following '.'/'->'/'[' — the "chained
// call" case spec.md's function-role table names separately.
func markFuncRole(s *chunk.Store, open, close *chunk.Chunk, nameTok *chunk.Chunk) {
	if close.IsNull() {
		return
	}
	after := s.NextNCNNL(close)
	switch {
	case after.Type == token.KindBraceOpen:
		nameTok.Type = token.KindFuncDef
		markFuncSignature(s, open, close)
	case after.Type == token.KindSemicolon:
		nameTok.Type = token.KindFuncProto
	case after.Type == token.KindDot || after.Type == token.KindArrow || after.Type == token.KindSquareOpen:
		nameTok.Type = token.KindFuncCallUser
	default:
		nameTok.Type = token.KindFuncCall
	}
}

// markFuncSignature flags every chunk inside a function definition's
// parameter list with token.FlagInFuncDef, and tags bare identifiers that
// look like "Type name" pairs as parameter names.
func markFuncSignature(s *chunk.Store, open, close *chunk.Chunk) {
	for c := s.Next(open); !c.IsNull() && c.ID() != close.ID(); c = s.Next(c) {
		c.Flags = c.Flags.Set(token.FlagInFuncDef)
		if c.Type == token.KindIdent {
			prev := s.PrevNCNNL(c)
			next := s.NextNCNNL(c)
			if isTypeLike(prev.Type) && (next.Type == token.KindComma || next.ID() == close.ID()) {
				c.Type = token.KindFuncParamName
			}
		}
	}
}
