package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/token"
)

func build(t *testing.T, src string) (*chunk.Store, []*chunk.Chunk) {
	t.Helper()
	s, errs := lexer.Lex([]byte(src), langflags.LangC)
	require.Empty(t, errs)
	ctx := cpd.New(langflags.LangC, "test.c", nil, nil)
	Run(ctx, s)

	var out []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if !token.IsWhitespaceOrNewline(c.Type) && c.Type != token.KindEOF {
			out = append(out, c)
		}
		return true
	})
	return s, out
}

func TestNestedParenLevels(t *testing.T) {
	// "( x ( ) )"
	_, got := build(t, "(x())")
	require.Len(t, got, 5)
	open, x, nestedOpen, nestedClose, close := got[0], got[1], got[2], got[3], got[4]

	assert.Equal(t, 1, open.Level)
	assert.Equal(t, 1, x.Level)
	assert.Equal(t, 2, nestedOpen.Level)
	assert.Equal(t, 1, nestedClose.Level)
	assert.Equal(t, 0, close.Level)

	assert.Equal(t, nestedOpen.ID(), nestedClose.MatchID)
	assert.Equal(t, nestedClose.ID(), nestedOpen.MatchID)
	assert.Equal(t, open.ID(), close.MatchID)
	assert.Equal(t, close.ID(), open.MatchID)
}

func TestBraceLevelTracksOnlyBraces(t *testing.T) {
	_, got := build(t, "{(x)}")
	require.Len(t, got, 5)
	braceOpen, parenOpen, x, parenClose, braceClose := got[0], got[1], got[2], got[3], got[4]

	assert.Equal(t, 1, braceOpen.BraceLevel)
	assert.Equal(t, 1, parenOpen.BraceLevel, "paren nesting doesn't change brace level")
	assert.Equal(t, 1, x.BraceLevel)
	assert.Equal(t, 1, parenClose.BraceLevel)
	assert.Equal(t, 0, braceClose.BraceLevel)

	assert.Equal(t, 2, parenOpen.Level)
	assert.Equal(t, 2, x.Level)
}

func TestBlockNumberMonotonicAcrossSiblings(t *testing.T) {
	_, got := build(t, "f(a,b,c)")
	require.Len(t, got, 8) // f ( a , b , c )
	aTok, commaTok1, bTok, commaTok2, cTok := got[2], got[3], got[4], got[5], got[6]

	assert.NotEqual(t, aTok.BlockNumber, bTok.BlockNumber)
	assert.NotEqual(t, bTok.BlockNumber, cTok.BlockNumber)
	assert.Equal(t, aTok.BlockNumber, commaTok1.BlockNumber)
	assert.Equal(t, bTok.BlockNumber, commaTok2.BlockNumber)
}
