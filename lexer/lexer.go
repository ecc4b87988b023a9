// Package lexer implements the Tokenizer (spec.md section 4.2): a byte
// buffer plus a language-flags mask goes in, a chunk.Store with every
// chunk's Type/OrigLine/OrigCol populated comes out. Grounded in
// WillAbides-yaml/internal/parserc/scannerc.go's staged-fetch design (a
// single forward cursor over the byte buffer, dispatching on the current
// byte to a scanXxx helper that consumes exactly one token and advances the
// cursor), generalized from YAML's token set to the C-family token set in
// package token.
package lexer

import (
	"unicode/utf8"

	"github.com/chunkfmt/chunkfmt/cerrors"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/token"
)

// Lexer holds the scanning cursor and the store it is building into.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int

	lang  langflags.Mask
	store *chunk.Store
	tail  *chunk.Chunk // last inserted chunk, for InsertAfter

	prevWasSpace bool
	errs         []*cerrors.Error
}

// Lex tokenizes src under lang and returns the resulting stream. Any
// UnterminatedLiteral errors encountered are recoverable: the stream is
// still returned, with an error-flagged chunk at the truncation point, and
// every such error is also returned in errs so the caller can bump
// cpd.Context.ErrorCount.
func Lex(src []byte, lang langflags.Mask) (*chunk.Store, []*cerrors.Error) {
	l := &Lexer{
		src:   src,
		line:  1,
		col:   1,
		lang:  lang,
		store: chunk.NewStore(),
	}
	l.tail = l.store.Get(chunk.NullID)
	l.run()
	eof := l.emit("", token.KindEOF, 0)
	_ = eof
	return l.store, l.errs
}

func (l *Lexer) run() {
	for l.pos < len(l.src) {
		l.scanOne()
	}
}

// peek returns the byte at pos+offset, or 0 past EOF.
func (l *Lexer) peek(offset int) byte {
	p := l.pos + offset
	if p < 0 || p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

// advance consumes n bytes, tracking line/col. Must not be called across a
// '\n' more than one byte at a time if col tracking is to stay exact; the
// scanning helpers call it one rune/byte at a time for anything that might
// contain a newline.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.pos >= len(l.src) {
			return
		}
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// emit appends a new chunk with the given text/type/flags, records its
// original position, and links it at the tail of the stream.
func (l *Lexer) emit(text string, typ token.Kind, startCol int) *chunk.Chunk {
	c := l.store.Create(text, typ, 0)
	c.OrigLine = l.line
	c.OrigCol = startCol
	c.OrigColEnd = startCol + utf8.RuneCountInString(text)
	c.OrigPrevSp = l.prevWasSpace
	l.store.InsertAfter(l.tail, c)
	l.tail = c
	l.prevWasSpace = false
	return c
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanOne consumes exactly one token (or one run of whitespace) starting
// at l.pos.
func (l *Lexer) scanOne() {
	b := l.peek(0)
	switch {
	case b == '\n':
		startLine := l.line
		l.advance(1)
		c := l.emit("\n", token.KindNewline, 0)
		c.OrigLine = startLine
		c.NlCount = 1
		return
	case b == ' ' || b == '\t' || b == '\r':
		l.scanWhitespace()
		return
	case b == '/' && l.peek(1) == '/':
		l.scanLineComment()
		return
	case b == '/' && l.peek(1) == '*':
		l.scanBlockComment()
		return
	case b == '"' || b == '\'':
		l.scanStringOrChar(b, "")
		return
	case isRawStringStart(l.src, l.pos, l.lang):
		l.scanRawString()
		return
	case isStringPrefix(l.src, l.pos, l.lang):
		l.scanPrefixedLiteral()
		return
	case isDigit(b) || (b == '.' && isDigit(l.peek(1))):
		l.scanNumber()
		return
	case isIdentStart(b):
		l.scanIdentOrKeyword()
		return
	default:
		l.scanPunctOrUnknown()
		return
	}
}

func (l *Lexer) scanWhitespace() {
	start := l.pos
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if b == ' ' || b == '\t' || b == '\r' {
			l.advance(1)
			continue
		}
		break
	}
	if l.pos > start {
		l.prevWasSpace = true
	}
}

func (l *Lexer) scanLineComment() {
	startCol := l.col
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	kind := token.KindCommentLine
	if len(text) >= 3 && (text[2] == '/' || text[2] == '!') {
		kind = token.KindCommentDoc
	}
	l.emit(text, kind, startCol)
}

func (l *Lexer) scanBlockComment() {
	startCol := l.col
	startLine := l.line
	start := l.pos
	l.advance(2) // "/*"
	terminated := false
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.advance(2)
			terminated = true
			break
		}
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	kind := token.KindCommentBlock
	if len(text) >= 3 && (text[2] == '*' || text[2] == '!') && len(text) > 4 {
		kind = token.KindCommentDoc
	}
	c := l.emit(text, kind, startCol)
	if !terminated {
		err := cerrors.New(cerrors.UnterminatedLiteral, startLine, startCol, "block comment runs past end of file")
		l.errs = append(l.errs, err)
		c.Flags = c.Flags.Set(token.FlagErrorAtEOF)
	}
}
