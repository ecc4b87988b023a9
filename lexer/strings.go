package lexer

import (
	"github.com/chunkfmt/chunkfmt/cerrors"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/token"
)

// isStringPrefix reports whether src[pos:] begins one of the wide/unicode
// string-literal prefixes (L"...", u8"...", u"...", U"...") spec.md section
// 4.2 requires preserving byte-for-byte, distinct from a raw string prefix
// (handled separately since R"..." has its own delimiter-matching scan).
func isStringPrefix(src []byte, pos int, lang langflags.Mask) bool {
	if !lang.Any(langflags.LangC | langflags.LangCPP | langflags.LangD) {
		return false
	}
	rest := src[pos:]
	for _, p := range []string{"u8", "u", "U", "L"} {
		if len(rest) > len(p) && string(rest[:len(p)]) == p {
			after := rest[len(p)]
			if after == '"' || after == '\'' {
				return true
			}
		}
	}
	return false
}

// isRawStringStart reports a C++11 raw string R"delim(...)delim" (or
// u8R"/uR"/UR"/LR" variants).
func isRawStringStart(src []byte, pos int, lang langflags.Mask) bool {
	if !lang.IsCPP() {
		return false
	}
	rest := src[pos:]
	for _, p := range []string{"u8R", "uR", "UR", "LR", "R"} {
		if len(rest) > len(p) && string(rest[:len(p)]) == p && rest[len(p)] == '"' {
			return true
		}
	}
	return false
}

// scanPrefixedLiteral handles L"...", u8"...", u"...", U"..." (the prefix
// plus the ordinary quoted body).
func (l *Lexer) scanPrefixedLiteral() {
	startCol := l.col
	start := l.pos
	for isIdentStart(l.peek(0)) {
		l.advance(1)
	}
	quote := l.peek(0)
	terminated := l.scanQuotedBody(quote)
	l.finishLiteral(start, startCol, quote, terminated)
}

// scanRawString handles R"delim(...)delim" and its u8R/uR/UR/LR variants:
// everything up to the matching ")delim\"" is consumed verbatim, including
// embedded quotes/newlines, per spec.md section 4.2.
func (l *Lexer) scanRawString() {
	startCol := l.col
	start := l.pos
	for l.peek(0) != '"' {
		l.advance(1)
	}
	l.advance(1) // consume opening quote
	delimStart := l.pos
	for l.peek(0) != '(' && l.pos < len(l.src) {
		l.advance(1)
	}
	delim := string(l.src[delimStart:l.pos])
	if l.pos < len(l.src) {
		l.advance(1) // consume '('
	}
	closeSeq := ")" + delim + "\""
	terminated := false
	for l.pos < len(l.src) {
		if matchesAt(l.src, l.pos, closeSeq) {
			l.advance(len(closeSeq))
			terminated = true
			break
		}
		l.advance(1)
	}
	// user-defined-literal suffix, e.g. R"(...)"_foo
	for isIdentStart(l.peek(0)) {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	c := l.emit(text, token.KindString, startCol)
	if !terminated {
		l.markUnterminated(c, startCol, "raw string")
	}
}

func matchesAt(src []byte, pos int, want string) bool {
	if pos+len(want) > len(src) {
		return false
	}
	return string(src[pos:pos+len(want)]) == want
}

// scanStringOrChar handles an ordinary "..." or '...' literal with no
// prefix.
func (l *Lexer) scanStringOrChar(quote byte, _ string) {
	startCol := l.col
	start := l.pos
	terminated := l.scanQuotedBody(quote)
	l.finishLiteral(start, startCol, quote, terminated)
}

// scanQuotedBody consumes an opening quote, its escaped body, and (if
// present) the closing quote, preserving every escape sequence
// (\xHH, \uHHHH, \UHHHHHHHH, up-to-3-digit octal, \&name;) byte-for-byte,
// per spec.md section 4.2. It returns whether a closing quote was found
// before end-of-line/end-of-file.
func (l *Lexer) scanQuotedBody(quote byte) bool {
	l.advance(1) // opening quote
	for l.pos < len(l.src) {
		b := l.peek(0)
		if b == '\n' {
			return false
		}
		if b == '\\' {
			l.advance(1)
			if l.pos < len(l.src) && l.peek(0) != '\n' {
				l.advance(1) // the escaped byte itself; multi-byte escapes
				// (\xHH etc.) are preserved as-is since we copy the raw
				// source bytes verbatim rather than re-encoding them.
			}
			continue
		}
		if b == quote {
			l.advance(1)
			return true
		}
		l.advance(1)
	}
	return false
}

// finishLiteral appends any trailing user-defined-literal suffix, emits
// the chunk, and records an UnterminatedLiteral error if the body scan
// didn't find its closing quote.
func (l *Lexer) finishLiteral(start, startCol int, quote byte, terminated bool) {
	for isIdentStart(l.peek(0)) {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	kind := token.KindString
	if quote == '\'' {
		kind = token.KindChar
	}
	c := l.emit(text, kind, startCol)
	if !terminated {
		l.markUnterminated(c, startCol, "string/char literal")
	}
}

func (l *Lexer) markUnterminated(c *chunk.Chunk, startCol int, what string) {
	err := cerrors.New(cerrors.UnterminatedLiteral, c.OrigLine, startCol, "%s runs past end of line/file", what)
	l.errs = append(l.errs, err)
	c.Flags = c.Flags.Set(token.FlagErrorAtEOF)
}
