package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// markBraceRoles retags every still-generic KindBraceOpen/KindBraceClose
// pair into the role-specific kind spec.md section 4.5's brace-role table
// names (enum/struct/union/class/namespace/if/else/switch/try/catch/do/
// while/for/func), by looking at the token that introduces the brace: a
// keyword directly before it, or — for control statements — the keyword
// that introduced the control paren whose close directly precedes the
// brace. Braces that don't follow any such construct (ordinary
// braced-init-lists, nested compound statements) are left as plain
// KindBraceOpen/KindBraceClose.
//
// Runs after classifyParens and markFuncRole so the control-paren and
// function-role retags it inspects have already happened; matching uses
// Chunk.MatchID, which the level pass set while these parens/braces still
// carried their generic Kind (retagging a Kind afterwards doesn't disturb
// MatchID).
func markBraceRoles(s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type != token.KindBraceOpen {
			return true
		}
		openKind, closeKind := braceRoleFor(s, c)
		if openKind == token.KindNone {
			return true
		}
		close := s.Get(c.MatchID)
		c.Type = openKind
		if !close.IsNull() {
			close.Type = closeKind
		}
		return true
	})
}

func braceRoleFor(s *chunk.Store, open *chunk.Chunk) (token.Kind, token.Kind) {
	prev := s.PrevNCNNL(open)
	switch prev.Type {
	case token.KindLParenClose:
		return braceRoleForControlParen(s, prev)
	case token.KindFParenClose:
		if nameTok := s.PrevNCNNL(s.Get(prev.MatchID)); nameTok.Type == token.KindFuncDef {
			return token.KindBraceOpenFunc, token.KindBraceCloseFunc
		}
		return token.KindNone, token.KindNone
	}

	switch declKeywordBefore(s, open) {
	case token.KindKeywordEnum:
		return token.KindBraceOpenEnum, token.KindBraceCloseEnum
	case token.KindKeywordStruct:
		return token.KindBraceOpenStruct, token.KindBraceCloseStruct
	case token.KindKeywordUnion:
		return token.KindBraceOpenUnion, token.KindBraceCloseUnion
	case token.KindKeywordClass:
		return token.KindBraceOpenClass, token.KindBraceCloseClass
	case token.KindKeywordNamespace:
		return token.KindBraceOpenNamespace, token.KindBraceCloseNamespace
	case token.KindKeywordTry:
		return token.KindBraceOpenTry, token.KindBraceCloseTry
	case token.KindKeywordDo:
		return token.KindBraceOpenDo, token.KindBraceCloseDo
	case token.KindKeywordElse, token.KindKeywordElseIf:
		return token.KindBraceOpenElse, token.KindBraceCloseElse
	}
	return token.KindNone, token.KindNone
}

// declKeywordBefore walks backward from a brace opener over a tag name
// and/or base-clause ("enum Color {", "struct Foo : Base {") looking for
// the declaration keyword that introduces it. The walk stays within the
// brace's own enclosing Level (open.Level-1): any token encountered
// there belongs to this declaration's header, never to an unrelated
// enclosing construct, since crossing a brace/paren boundary would change
// Level.
func declKeywordBefore(s *chunk.Store, open *chunk.Chunk) token.Kind {
	outerLevel := open.Level - 1
	for c := s.PrevNCNNL(open); !c.IsNull() && c.Level == outerLevel; c = s.PrevNCNNL(c) {
		switch c.Type {
		case token.KindKeywordEnum, token.KindKeywordStruct, token.KindKeywordUnion,
			token.KindKeywordClass, token.KindKeywordNamespace, token.KindKeywordTry,
			token.KindKeywordDo, token.KindKeywordElse, token.KindKeywordElseIf:
			return c.Type
		case token.KindSemicolon, token.KindBraceOpen, token.KindBraceClose,
			token.KindLParenClose, token.KindFParenClose, token.KindBraceInit:
			return token.KindNone
		}
	}
	return token.KindNone
}

// braceRoleForControlParen looks past a control-statement's closing
// L-paren to the keyword that introduced it.
func braceRoleForControlParen(s *chunk.Store, lparenClose *chunk.Chunk) (token.Kind, token.Kind) {
	lparenOpen := s.Get(lparenClose.MatchID)
	if lparenOpen.IsNull() {
		return token.KindNone, token.KindNone
	}
	keyword := s.PrevNCNNL(lparenOpen)
	switch keyword.Type {
	case token.KindKeywordIf:
		return token.KindBraceOpenIf, token.KindBraceCloseIf
	case token.KindKeywordFor:
		return token.KindBraceOpenFor, token.KindBraceCloseFor
	case token.KindKeywordWhile:
		return token.KindBraceOpenWhile, token.KindBraceCloseWhile
	case token.KindKeywordSwitch:
		return token.KindBraceOpenSwitch, token.KindBraceCloseSwitch
	case token.KindKeywordCatch:
		return token.KindBraceOpenCatch, token.KindBraceCloseCatch
	}
	return token.KindNone, token.KindNone
}
