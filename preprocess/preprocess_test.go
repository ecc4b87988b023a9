package preprocess

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

func lexAndFrame(t *testing.T, src string) (*chunk.Store, *cpd.Context) {
	t.Helper()
	s, errs := lexer.Lex([]byte(src), langflags.LangC)
	require.Empty(t, errs)
	ctx := cpd.New(langflags.LangC, "test.c", nil, nil)
	return s, ctx
}

func TestPPIfEndifLevels(t *testing.T) {
	s, ctx := lexAndFrame(t, "#ifdef FOO\nint x;\n#endif\n")
	touched := Run(ctx, s)
	require.NotEmpty(t, touched)

	var sawIfdef, sawEndif bool
	s.Each(func(c *chunk.Chunk) bool {
		switch c.Type {
		case token.KindPPIfdef:
			sawIfdef = true
			assert.Equal(t, 0, c.PPLevel)
		case token.KindPPEndif:
			sawEndif = true
			assert.Equal(t, 0, c.PPLevel)
		case token.KindType:
			if c.Text == "int" {
				assert.Equal(t, 1, c.PPLevel)
				assert.False(t, c.Flags.Has(token.FlagInPreprocessor))
			}
		}
		return true
	})
	assert.True(t, sawIfdef)
	assert.True(t, sawEndif)
}

func TestPPElseKeepsLevel(t *testing.T) {
	s, ctx := lexAndFrame(t, "#if A\nint a;\n#else\nint b;\n#endif\n")
	Run(ctx, s)

	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindIdent && (c.Text == "a" || c.Text == "b") {
			assert.Equal(t, 1, c.PPLevel, "both branches of #if/#else nest one level deep")
		}
		return true
	})
}

func TestPPNested(t *testing.T) {
	s, ctx := lexAndFrame(t, "#ifdef A\n#ifdef B\nint x;\n#endif\n#endif\n")
	Run(ctx, s)

	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindIdent && c.Text == "x" {
			assert.Equal(t, 2, c.PPLevel)
		}
		return true
	})
}

func TestPPUnbalancedEndifLogsWarning(t *testing.T) {
	s, ctx := lexAndFrame(t, "#endif\n")
	assert.NotPanics(t, func() { Run(ctx, s) })
}
