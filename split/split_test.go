package split

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/align"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/combine"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/indent"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/levels"
	"github.com/chunkfmt/chunkfmt/newline"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/preprocess"
	"github.com/chunkfmt/chunkfmt/token"
)

// build runs every stage that must precede the width splitter: lex,
// preprocess, brace-levels, combine, then one {newline, align, indent}
// pass so every chunk has a real natural Column to measure overflow
// against, exactly as format.Run sequences them.
func build(t *testing.T, src string, opts map[string]string) (*chunk.Store, *cpd.Context) {
	t.Helper()
	s, errs := lexer.Lex([]byte(src), langflags.LangCPP)
	require.Empty(t, errs)
	ctx := cpd.New(langflags.LangCPP, "test.cpp", options.NewOrderedMapProvider(opts), nil)
	preprocess.Run(ctx, s)
	levels.Run(ctx, s)
	require.NoError(t, combine.Run(ctx, s))
	newline.Run(ctx, s)
	align.Run(ctx, s)
	indent.Run(ctx, s)
	return s, ctx
}

func renderedLines(s *chunk.Store) []string {
	var lines []string
	var cur []string
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindNewline || c.Type == token.KindNewlineCont {
			lines = append(lines, strings.Join(cur, ""))
			cur = nil
			return true
		}
		if c.Type == token.KindEOF {
			return true
		}
		cur = append(cur, c.Text)
		return true
	})
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, ""))
	}
	return lines
}

func TestRunLeavesShortLinesAlone(t *testing.T) {
	s, ctx := build(t, "int x = 1;\n", map[string]string{"code_width": "80"})
	Run(ctx, s)
	assert.Equal(t, 1, len(renderedLines(s)))
}

func TestRunSplitsAssignmentPastWidth(t *testing.T) {
	src := "int aVeryLongVariableName = anotherVeryLongFunctionCallHere(1, 2, 3);\n"
	s, ctx := build(t, src, map[string]string{"code_width": "40"})
	Run(ctx, s)

	var sawNewChunkOnSplitLine bool
	s.Each(func(c *chunk.Chunk) bool {
		if c.Flags.Has(token.FlagContinuationLine) {
			sawNewChunkOnSplitLine = true
			return false
		}
		return true
	})
	assert.True(t, sawNewChunkOnSplitLine, "expected a continuation-line chunk after splitting")
	assert.Greater(t, len(renderedLines(s)), 1)
}

func TestRunStopsAtFirstUnsplittableOverflow(t *testing.T) {
	// A single identifier longer than code_width leaves no split point
	// between the start of its line and the overflowing chunk, so the whole
	// pass must stop without panicking.
	src := "int xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx;\n"
	s, ctx := build(t, src, map[string]string{"code_width": "10"})
	assert.NotPanics(t, func() { Run(ctx, s) })
}

func TestIsPastWidthUsesColumnAndRuneWidth(t *testing.T) {
	c := &chunk.Chunk{Text: "abcde", Column: 77}
	assert.True(t, isPastWidth(c, 80))
	c.Column = 70
	assert.False(t, isPastWidth(c, 80))
}

func TestSkipSmallForwardSkipsCommasAndSemicolons(t *testing.T) {
	s, _ := build(t, "f(a, b, c);\n", nil)
	var comma *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindComma {
			comma = c
			return false
		}
		return true
	})
	require.NotNil(t, comma)
	next := skipSmallForward(s, comma)
	assert.NotEqual(t, token.KindComma, next.Type)
}

func TestPosLeadHonorsPosAssignOption(t *testing.T) {
	opts := options.NewOrderedMapProvider(map[string]string{"pos_assign": "lead"})
	c := &chunk.Chunk{Type: token.KindAssign}
	assert.True(t, posLead(c, opts))

	opts2 := options.NewOrderedMapProvider(map[string]string{"pos_assign": "trail"})
	assert.False(t, posLead(c, opts2))
}

func TestSplitPriorityPromotesFParenWhenIndentContinueNegative(t *testing.T) {
	fparen := &chunk.Chunk{Type: token.KindFParenOpen}
	assert.Equal(t, 21, splitPriority(fparen, 21))
	assert.Equal(t, 8, splitPriority(fparen, 8))
}
