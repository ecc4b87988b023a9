package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/levels"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

func build(t *testing.T, src string, opts options.Provider) (*chunk.Store, *cpd.Context) {
	t.Helper()
	s, errs := lexer.Lex([]byte(src), langflags.LangCPP)
	require.Empty(t, errs)
	ctx := cpd.New(langflags.LangCPP, "test.cpp", opts, nil)
	levels.Run(ctx, s)
	require.NoError(t, Run(ctx, s))
	return s, ctx
}

func collect(s *chunk.Store) []*chunk.Chunk {
	var out []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if !token.IsWhitespaceOrNewline(c.Type) && c.Type != token.KindEOF {
			out = append(out, c)
		}
		return true
	})
	return out
}

func findFirst(chunks []*chunk.Chunk, typ token.Kind) *chunk.Chunk {
	for _, c := range chunks {
		if c.Type == typ {
			return c
		}
	}
	return nil
}

func TestStarAmpDeclaratorRole(t *testing.T) {
	s, _ := build(t, "int *p = &x;\n", nil)
	got := collect(s)
	star := findFirst(got, token.KindStar)
	require.NotNil(t, star)
	assert.Equal(t, token.KindVarTypeWord, star.ParentType)

	amp := findFirst(got, token.KindAmp)
	require.NotNil(t, amp)
	assert.Equal(t, token.KindNone, amp.ParentType)
}

func TestAngleBracketsTemplateVsCompare(t *testing.T) {
	s, _ := build(t, "vector<int> v; bool b = a < c;\n", nil)
	got := collect(s)

	open := findFirst(got, token.KindAngleOpenTemplate)
	require.NotNil(t, open)
	close := findFirst(got, token.KindAngleCloseTemplate)
	require.NotNil(t, close)
	assert.Equal(t, open.ID(), close.MatchID)

	lt := findFirst(got, token.KindAngleCompareLT)
	require.NotNil(t, lt)
}

func TestClassifyParensControlAndCall(t *testing.T) {
	s, _ := build(t, "if (x) { foo(y); }\n", nil)
	got := collect(s)

	lparen := findFirst(got, token.KindLParenOpen)
	require.NotNil(t, lparen)

	fparen := findFirst(got, token.KindFParenOpen)
	require.NotNil(t, fparen)
}

func TestFuncDefVsCallRoles(t *testing.T) {
	s, _ := build(t, "int add(int a, int b) { return a; }\n", nil)
	got := collect(s)
	def := findFirst(got, token.KindFuncDef)
	require.NotNil(t, def)
	assert.Equal(t, "add", def.Text)
}

func TestVarDefFirstAndInline(t *testing.T) {
	s, _ := build(t, "int a, b = 2, c;\n", nil)
	got := collect(s)

	var first, inline []*chunk.Chunk
	for _, c := range got {
		if c.Type == token.KindVarDefFirst {
			first = append(first, c)
		}
		if c.Type == token.KindVarDefInline {
			inline = append(inline, c)
		}
	}
	require.Len(t, first, 1)
	assert.Equal(t, "a", first[0].Text)
	require.Len(t, inline, 2)
	assert.Equal(t, "b", inline[0].Text)
	assert.Equal(t, "c", inline[1].Text)
}

func TestTernaryMatchesColonAtSameLevel(t *testing.T) {
	s, _ := build(t, "int x = a ? (b ? c : d) : e;\n", nil)
	got := collect(s)

	var colons []*chunk.Chunk
	for _, c := range got {
		if c.Type == token.KindCondColon {
			colons = append(colons, c)
		}
	}
	require.Len(t, colons, 2)
}

func TestParamPackDeclarationAndExpansion(t *testing.T) {
	s, _ := build(t, "template<typename... Args> void f(Args... args) { g(args...); }\n", nil)
	got := collect(s)

	var packed int
	var flagged int
	for _, c := range got {
		if c.Type == token.KindParamPack {
			packed++
		}
		if c.Flags.Has(token.FlagParamPack) {
			flagged++
		}
	}
	assert.GreaterOrEqual(t, packed, 2)
	assert.GreaterOrEqual(t, flagged, 1)
}

func TestOperatorShiftParentType(t *testing.T) {
	s, _ := build(t, "ostream& operator<<(ostream& os, Foo f);\n", nil)
	got := collect(s)
	shift := findFirst(got, token.KindShiftLeft)
	require.NotNil(t, shift)
	assert.Equal(t, token.KindKeywordOperator, shift.ParentType)
}

func TestTrailingReturnArrow(t *testing.T) {
	s, _ := build(t, "auto f(int x) -> int { return x; }\n", nil)
	got := collect(s)
	arrow := findFirst(got, token.KindArrow)
	require.NotNil(t, arrow)
	assert.Equal(t, token.KindFuncDef, arrow.ParentType)
}

func TestEnumCleanupRemovesTrailingComma(t *testing.T) {
	opts := options.NewOrderedMapProvider(map[string]string{"mod_enum_last_comma": "remove"})
	s, _ := build(t, "enum Color { RED, GREEN, };\n", opts)
	got := collect(s)
	var commaBeforeClose bool
	for i, c := range got {
		if c.Type == token.KindBraceCloseEnum && i > 0 && got[i-1].Type == token.KindComma {
			commaBeforeClose = true
		}
	}
	assert.False(t, commaBeforeClose)
}

func TestEnumCleanupAddsTrailingComma(t *testing.T) {
	opts := options.NewOrderedMapProvider(map[string]string{"mod_enum_last_comma": "add"})
	s, _ := build(t, "enum Color { RED, GREEN };\n", opts)
	got := collect(s)
	var commaBeforeClose bool
	for i, c := range got {
		if c.Type == token.KindBraceCloseEnum && i > 0 && got[i-1].Type == token.KindComma {
			commaBeforeClose = true
		}
	}
	assert.True(t, commaBeforeClose)
}

func TestRewriteInfiniteLoopForToWhile(t *testing.T) {
	opts := options.NewOrderedMapProvider(map[string]string{"mod_infinite_loop": "while"})
	s, _ := build(t, "for (;;) { x(); }\n", opts)
	got := collect(s)
	assert.NotNil(t, findFirst(got, token.KindKeywordWhile))
	assert.Nil(t, findFirst(got, token.KindKeywordFor))
}

func TestRewriteInfiniteLoopWhileToFor(t *testing.T) {
	opts := options.NewOrderedMapProvider(map[string]string{"mod_infinite_loop": "for"})
	s, _ := build(t, "while (true) { x(); }\n", opts)
	got := collect(s)
	assert.NotNil(t, findFirst(got, token.KindKeywordFor))
	assert.Nil(t, findFirst(got, token.KindKeywordWhile))
}
