package chunk

import "github.com/chunkfmt/chunkfmt/token"

// Scope selects which of the two traversal modes spec.md section 3.2
// describes: "next/prev ... in two scope modes (all vs.
// preprocessor-only)". ScopeAll walks every chunk; ScopeCodeOnly skips any
// chunk flagged in-preprocessor, letting callers reason about the
// "logical" C-family code as if preprocessor directives were not there
// (used by the Combiner and Alignment Engine, which must not let a stray
// `#define` in the middle of a statement confuse paren/brace matching).
type Scope int

const (
	ScopeAll Scope = iota
	ScopeCodeOnly
)

// NextScoped returns the next chunk after c according to scope.
func (s *Store) NextScoped(c *Chunk, scope Scope) *Chunk {
	n := s.Next(c)
	if scope == ScopeAll {
		return n
	}
	for !n.IsNull() && n.Flags.Has(token.FlagInPreprocessor) {
		n = s.Next(n)
	}
	return n
}

// PrevScoped returns the previous chunk before c according to scope.
func (s *Store) PrevScoped(c *Chunk, scope Scope) *Chunk {
	p := s.Prev(c)
	if scope == ScopeAll {
		return p
	}
	for !p.IsNull() && p.Flags.Has(token.FlagInPreprocessor) {
		p = s.Prev(p)
	}
	return p
}

// NextNCNNLScoped combines NextNCNNL with scope (ScopeCodeOnly also skips
// chunks flagged in-preprocessor).
func (s *Store) NextNCNNLScoped(c *Chunk, scope Scope) *Chunk {
	n := s.NextScoped(c, scope)
	for !n.IsNull() && (token.IsComment(n.Type) || token.IsWhitespaceOrNewline(n.Type)) {
		n = s.NextScoped(n, scope)
	}
	return n
}

// PrevNCNNLScoped combines PrevNCNNL with scope (ScopeCodeOnly also skips
// chunks flagged in-preprocessor).
func (s *Store) PrevNCNNLScoped(c *Chunk, scope Scope) *Chunk {
	p := s.PrevScoped(c, scope)
	for !p.IsNull() && (token.IsComment(p.Type) || token.IsWhitespaceOrNewline(p.Type)) {
		p = s.PrevScoped(p, scope)
	}
	return p
}
