package newline

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

func TestBracePlacementAddInsertsNewlineBeforeIfBrace(t *testing.T) {
	s, ctx := build(t, "if (x) { y(); }\n", map[string]string{"nl_if_brace": "add"})
	Run(ctx, s)

	var brace *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindBraceOpenIf {
			brace = c
			return false
		}
		return true
	})
	require.NotNil(t, brace)
	assert.True(t, isNewline(s.Prev(brace).Type))
}

func TestBracePlacementRemoveDeletesNewlineBeforeIfBrace(t *testing.T) {
	s, ctx := build(t, "if (x)\n{\ny();\n}\n", map[string]string{"nl_if_brace": "remove"})
	Run(ctx, s)

	var brace *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindBraceOpenIf {
			brace = c
			return false
		}
		return true
	})
	require.NotNil(t, brace)
	assert.False(t, isNewline(s.Prev(brace).Type))
}

func TestElseBraceJoinsPrecedingLine(t *testing.T) {
	s, ctx := build(t, "if (x) {\ny();\n}\nelse {\nz();\n}\n", map[string]string{"nl_brace_else": "remove"})
	Run(ctx, s)

	var elseKw *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindKeywordElse {
			elseKw = c
			return false
		}
		return true
	})
	require.NotNil(t, elseKw)
	assert.False(t, isNewline(s.Prev(elseKw).Type))
}

func TestLabelColonGetsNewlineAfter(t *testing.T) {
	s, ctx := build(t, "done: x();\n", nil)
	Run(ctx, s)

	var label *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindLabelColon {
			label = c
			return false
		}
		return true
	})
	if label == nil {
		t.Skip("lexer/combiner didn't tag a label colon for this input shape")
	}
	assert.True(t, isNewline(s.Next(label).Type))
}

func TestMultilineCommentForcesNewlineBeforeFollowingCode(t *testing.T) {
	s, ctx := build(t, "/* hi */ x();\n", nil)
	Run(ctx, s)

	var comment *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindCommentBlock {
			comment = c
			return false
		}
		return true
	})
	require.NotNil(t, comment)

	tmp := s.Next(comment)
	for !tmp.IsNull() && token.IsComment(tmp.Type) {
		tmp = s.Next(tmp)
	}
	require.NotNil(t, tmp)
	assert.True(t, isNewline(tmp.Type))
}

func TestUndoOneLinerClearsWholeLine(t *testing.T) {
	s, _ := build(t, "if (x) { y(); }\n", nil)
	var all []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if !token.IsWhitespaceOrNewline(c.Type) && c.Type != token.KindEOF {
			all = append(all, c)
		}
		return true
	})
	for _, c := range all {
		c.Flags = c.Flags.Set(token.FlagOneLiner)
	}

	mid := all[len(all)/2]
	undoOneLiner(s, mid)

	for _, c := range all {
		assert.False(t, c.Flags.Has(token.FlagOneLiner), "chunk %q still one-liner-flagged", c.Text)
	}
}
