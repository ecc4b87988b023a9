package combine

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// markVarDefs finds variable-definition statements and tags their declared
// names per spec.md section 4.5: the first name in a comma-separated
// group becomes KindVarDefFirst, subsequent names become KindVarDefInline,
// both carrying token.FlagVarDef(+FlagVarDefFirst/FlagVarDefInline).
//
// This is a lexical (symbol-table-free) pass: a candidate declaration is
// any run of type-like tokens (spec.md section 4.5's star/amp
// disambiguation already marked declarator stars/amps via ParentType)
// followed by an identifier, where what comes after that identifier is
// consistent with a declarator ('=', ',', ';', or '[') rather than a call
// or a larger expression. It only looks at statement-level positions
// (Level == BraceLevel, i.e. not nested inside any unmatched paren/
// bracket — function parameter lists are handled separately by
// markFuncSignature, and control-statement parens by markForControlParen).
func markVarDefs(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		if c.Level != c.BraceLevel {
			return true
		}
		if !isTypeLike(c.Type) || c.Flags.Has(token.FlagInPreprocessor) {
			return true
		}
		prev := s.PrevNCNNL(c)
		if isTypeLike(prev.Type) {
			return true // not the start of a type run
		}
		if prev.Type == token.KindKeywordTypedef {
			return true // a typedef names a type, not a variable
		}
		tryMarkDeclaration(ctx, s, c)
		return true
	})
}

func tryMarkDeclaration(ctx *cpd.Context, s *chunk.Store, typeStart *chunk.Chunk) {
	cur := typeStart
	for {
		next := s.NextNCNNL(cur)
		if next.Type == token.KindIdent {
			break
		}
		if isTypeLike(next.Type) || next.Type == token.KindDoubleColon {
			cur = next
			continue
		}
		return // no declarator name found; not a declaration
	}

	name := s.NextNCNNL(cur)
	after := s.NextNCNNL(name)
	switch after.Type {
	case token.KindSemicolon, token.KindAssign, token.KindComma, token.KindSquareOpen:
		// plausible declarator tail
	default:
		return
	}

	first := true
	changed := false
	for {
		if first {
			name.Type = token.KindVarDefFirst
			name.Flags = name.Flags.Set(token.FlagVarDef | token.FlagVarDefFirst)
		} else {
			name.Type = token.KindVarDefInline
			name.Flags = name.Flags.Set(token.FlagVarDef | token.FlagVarDefInline)
		}
		changed = true
		first = false

		nxt := skipInitializer(s, name)
		if nxt.Type != token.KindComma {
			break
		}
		cand := s.NextNCNNL(nxt)
		if cand.Type != token.KindIdent {
			break
		}
		name = cand
	}
	if changed {
		ctx.MarkChange()
	}
}

// skipInitializer walks forward from a just-tagged declarator name past
// any '=' initializer expression, stopping at the first comma or
// semicolon that shares the declarator's own Level (a comma nested inside
// a call/initializer-list belongs to that inner construct, not to the
// declaration's own comma-separated name list).
func skipInitializer(s *chunk.Store, name *chunk.Chunk) *chunk.Chunk {
	c := s.NextNCNNL(name)
	for !c.IsNull() {
		if c.Level == name.Level && (c.Type == token.KindComma || c.Type == token.KindSemicolon) {
			return c
		}
		if c.Level < name.Level {
			return c
		}
		c = s.NextNCNNL(c)
	}
	return c
}
