package lexer

import "github.com/chunkfmt/chunkfmt/token"

// scanIdentOrKeyword consumes a maximal identifier and classifies it
// against the per-language keyword table (spec.md section 4.2).
func (l *Lexer) scanIdentOrKeyword() {
	startCol := l.col
	start := l.pos
	for isIdentCont(l.peek(0)) {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	kind, _ := lookupKeyword(text, l.lang)
	l.emit(text, kind, startCol)
}

// scanPunctOrUnknown consumes one punctuator via maximum-munch, or — for a
// byte that matches nothing in the table (e.g. a stray control byte, or
// the start of a multi-byte UTF-8 sequence inside an otherwise-unhandled
// context) — a single rune tagged KindIdent so the stream always advances
// and stays well-formed.
func (l *Lexer) scanPunctOrUnknown() {
	startCol := l.col
	if p, length, ok := matchPunct(l.src, l.pos, l.lang); ok {
		l.advance(length)
		l.emit(p.text, p.kind, startCol)
		return
	}
	// Fallback: consume one byte (rune-safe: multi-byte UTF-8 identifier
	// continuations are handled by isIdentStart's b >= 0x80 case above, so
	// reaching here with a high byte means it's genuinely unrecognized).
	b := l.peek(0)
	l.advance(1)
	l.emit(string(b), token.KindIdent, startCol)
}
