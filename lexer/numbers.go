package lexer

import "github.com/chunkfmt/chunkfmt/token"

// scanNumber consumes an integer/float/hex/binary literal, including
// digit separators (C++14 '\'', D/Java/C#/ECMA '_'; both are accepted
// under every language), per spec.md section 4.2.
func (l *Lexer) scanNumber() {
	startCol := l.col
	start := l.pos

	isHex := l.peek(0) == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X')
	isBin := l.peek(0) == '0' && (l.peek(1) == 'b' || l.peek(1) == 'B')
	if isHex || isBin {
		l.advance(2)
	}

	digit := func(b byte) bool {
		switch {
		case isHex:
			return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
		case isBin:
			return b == '0' || b == '1'
		default:
			return isDigit(b)
		}
	}
	sep := func(b byte) bool { return b == '\'' || b == '_' }

	for l.pos < len(l.src) {
		b := l.peek(0)
		if digit(b) || sep(b) {
			l.advance(1)
			continue
		}
		if !isHex && !isBin && b == '.' && isDigit(l.peek(1)) {
			l.advance(1)
			continue
		}
		if !isHex && (b == 'e' || b == 'E') && (isDigit(l.peek(1)) || ((l.peek(1) == '+' || l.peek(1) == '-') && isDigit(l.peek(2)))) {
			l.advance(1)
			continue
		}
		if isHex && (b == 'p' || b == 'P') && (isDigit(l.peek(1)) || l.peek(1) == '+' || l.peek(1) == '-') {
			l.advance(1)
			continue
		}
		break
	}
	// integer/float suffix: u, U, l, L, f, F, ll, LL, uL, etc., or a
	// user-defined-literal suffix (123_km).
	for isIdentStart(l.peek(0)) || isDigit(l.peek(0)) {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	l.emit(text, token.KindNumber, startCol)
}
