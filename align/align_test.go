package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/combine"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/levels"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

func build(t *testing.T, src string, opts map[string]string) (*chunk.Store, *cpd.Context) {
	t.Helper()
	s, errs := lexer.Lex([]byte(src), langflags.LangCPP)
	require.Empty(t, errs)
	ctx := cpd.New(langflags.LangCPP, "test.cpp", options.NewOrderedMapProvider(opts), nil)
	levels.Run(ctx, s)
	require.NoError(t, combine.Run(ctx, s))
	return s, ctx
}

func collect(s *chunk.Store, typ token.Kind) []*chunk.Chunk {
	var out []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == typ {
			out = append(out, c)
		}
		return true
	})
	return out
}

func TestVarDefsLinksDeclaredNamesIntoAlignChain(t *testing.T) {
	s, ctx := build(t, "int a;\nint bb;\n", map[string]string{"align_var_def_span": "3"})
	VarDefs(s, ctx.Options)

	names := collect(s, token.KindVarDefFirst)
	var tagged []*chunk.Chunk
	for _, c := range names {
		if c.Flags.Has(token.FlagVarDefFirst) {
			tagged = append(tagged, c)
		}
	}
	require.Len(t, tagged, 2)
	assert.NotNil(t, tagged[0].Align)
	assert.True(t, tagged[0].Flags.Has(token.FlagAlignStart))
	assert.Equal(t, tagged[0].ID(), tagged[1].Align.Start)
}

func TestAssignsLinksFirstEqualsPerLine(t *testing.T) {
	s, ctx := build(t, "a = 1;\nbb = 2;\n", map[string]string{"align_assign_span": "3"})
	Assigns(s, ctx.Options)

	eqs := collect(s, token.KindAssign)
	require.Len(t, eqs, 2)
	assert.NotNil(t, eqs[0].Align)
	assert.Equal(t, eqs[0].ID(), eqs[1].Align.Start)
}

func TestAssignsSkipsInsideControlParens(t *testing.T) {
	s, ctx := build(t, "if (a = 1) { b = 2; }\n", map[string]string{"align_assign_span": "3"})
	Assigns(s, ctx.Options)

	eqs := collect(s, token.KindAssign)
	require.Len(t, eqs, 2)
	// the one inside "if (...)" must not have joined any chain, since
	// control parens are skipped entirely.
	inParen := eqs[0]
	assert.Nil(t, inParen.Align)
}

func TestLeftShiftAlignsChainedInserters(t *testing.T) {
	s, ctx := build(t, "cout << a\n<< b\n<< c;\n", map[string]string{})
	LeftShift(s, ctx.Options)

	shifts := collect(s, token.KindShiftLeft)
	require.Len(t, shifts, 3)
	assert.NotNil(t, shifts[0].Align)
}

func TestLeftShiftIgnoresOperatorDeclaration(t *testing.T) {
	s, ctx := build(t, "ostream& operator<<(ostream& o, int x);\n", map[string]string{})
	LeftShift(s, ctx.Options)

	shifts := collect(s, token.KindShiftLeft)
	require.Len(t, shifts, 1)
	assert.Nil(t, shifts[0].Align)
}

func TestTypedefsLinksTagNames(t *testing.T) {
	s, ctx := build(t, "typedef int Foo;\ntypedef long Bar;\n", map[string]string{"align_typedef_span": "3"})
	Typedefs(s, ctx.Options)

	idents := collect(s, token.KindIdent)
	var tags []*chunk.Chunk
	for _, c := range idents {
		if c.Text == "Foo" || c.Text == "Bar" {
			tags = append(tags, c)
		}
	}
	require.Len(t, tags, 2)
	assert.NotNil(t, tags[0].Align)
}

func TestStackFlushLinksAlignedGroupInOrder(t *testing.T) {
	s := chunk.NewStore()
	a := s.Create("a", token.KindIdent, 0)
	a.OrigCol = 1
	b := s.Create("bb", token.KindIdent, 0)
	b.OrigCol = 5
	s.InsertAfter(s.GetTail(), a)
	s.InsertAfter(a, b)

	as := New(s)
	as.Start(0, 0)
	as.Add(a)
	as.Add(b)
	as.End()

	require.NotNil(t, a.Align)
	require.NotNil(t, b.Align)
	assert.Equal(t, a.ID(), b.Align.Start)
	assert.Equal(t, b.ID(), a.Align.Next)
	assert.True(t, a.Flags.Has(token.FlagAlignStart))
}

func TestStackAddBeyondThresholdSkips(t *testing.T) {
	s := chunk.NewStore()
	a := s.Create("a", token.KindIdent, 0)
	a.OrigCol = 1
	b := s.Create("bb", token.KindIdent, 0)
	b.OrigCol = 50
	s.InsertAfter(s.GetTail(), a)
	s.InsertAfter(a, b)

	as := New(s)
	as.Start(0, 5)
	as.Add(a)
	as.Add(b)

	assert.Equal(t, 1, len(as.aligned))
	assert.Equal(t, 1, len(as.skipped))
}
