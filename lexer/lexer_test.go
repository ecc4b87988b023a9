package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/token"
)

func collectNonWS(s *chunk.Store) []*chunk.Chunk {
	var out []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if !token.IsWhitespaceOrNewline(c.Type) && c.Type != token.KindEOF {
			out = append(out, c)
		}
		return true
	})
	return out
}

func TestLexSimpleDeclaration(t *testing.T) {
	src := []byte("int x=5;\n")
	s, errs := Lex(src, langflags.LangC)
	require.Empty(t, errs)

	got := collectNonWS(s)
	require.Len(t, got, 5)
	assert.Equal(t, token.KindType, got[0].Type)
	assert.Equal(t, "int", got[0].Text)
	assert.Equal(t, token.KindIdent, got[1].Type)
	assert.Equal(t, "x", got[1].Text)
	assert.Equal(t, token.KindAssign, got[2].Type)
	assert.Equal(t, token.KindNumber, got[3].Type)
	assert.Equal(t, "5", got[3].Text)
	assert.Equal(t, token.KindSemicolon, got[4].Type)
}

func TestLexPointerDeclaration(t *testing.T) {
	src := []byte(`char *name="bob";`)
	s, errs := Lex(src, langflags.LangC)
	require.Empty(t, errs)
	got := collectNonWS(s)
	require.Len(t, got, 6)
	assert.Equal(t, token.KindStar, got[1].Type)
	assert.Equal(t, token.KindString, got[4].Type)
	assert.Equal(t, `"bob"`, got[4].Text)
}

func TestLexRawString(t *testing.T) {
	src := []byte(`R"raw(hello "world")raw";`)
	s, errs := Lex(src, langflags.LangCPP)
	require.Empty(t, errs)
	got := collectNonWS(s)
	require.Len(t, got, 2)
	assert.Equal(t, token.KindString, got[0].Type)
	assert.Equal(t, `R"raw(hello "world")raw"`, got[0].Text)
}

func TestLexUnterminatedStringRecovers(t *testing.T) {
	src := []byte(`"never closes`)
	s, errs := Lex(src, langflags.LangC)
	require.Len(t, errs, 1)
	assert.Equal(t, errs[0].Kind.String(), "UnterminatedLiteral")
	got := collectNonWS(s)
	require.Len(t, got, 1)
	assert.True(t, got[0].Flags.Has(token.FlagErrorAtEOF))
}

func TestLexTemplateAngleRaw(t *testing.T) {
	src := []byte(`vector<int> v;`)
	s, errs := Lex(src, langflags.LangCPP)
	require.Empty(t, errs)
	got := collectNonWS(s)
	require.Len(t, got, 6)
	assert.Equal(t, token.KindAngleOpen, got[1].Type)
	assert.Equal(t, token.KindAngleClose, got[3].Type)
}

func TestLexDoubleColonScopeRes(t *testing.T) {
	src := []byte(`std::vector<int>::iterator it;`)
	s, errs := Lex(src, langflags.LangCPP)
	require.Empty(t, errs)
	got := collectNonWS(s)
	var sawScope bool
	for _, c := range got {
		if c.Type == token.KindScopeRes {
			sawScope = true
		}
	}
	assert.True(t, sawScope)
}

func TestTokenPreservationInvariant(t *testing.T) {
	src := []byte("int x = 5; // trailing\nchar *p = \"a b\";\n")
	s, _ := Lex(src, langflags.LangC)
	var rebuilt []byte
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindEOF {
			return true
		}
		if c.OrigPrevSp {
			rebuilt = append(rebuilt, ' ')
		}
		rebuilt = append(rebuilt, []byte(c.Text)...)
		return true
	})
	assert.Equal(t, string(src), string(rebuilt))
}
