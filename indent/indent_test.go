package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/align"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/combine"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/levels"
	"github.com/chunkfmt/chunkfmt/newline"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/preprocess"
	"github.com/chunkfmt/chunkfmt/token"
)

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
	return s, ctx
}

func findFirst(s *chunk.Store, k token.Kind) *chunk.Chunk {
	var found *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == k {
			found = c
			return false
		}
		return true
	})
	return found
}

func TestRunGivesEveryChunkAPositiveColumn(t *testing.T) {
	s, ctx := build(t, "if (x) {\n    y();\n}\n", nil)
	Run(ctx, s)
	s.Each(func(c *chunk.Chunk) bool {
		assert.GreaterOrEqual(t, c.Column, 1)
		return true
	})
}

func TestRunIndentsNestedBraceBodyByIndentColumns(t *testing.T) {
	s, ctx := build(t, "if (x) {\ny();\n}\n", map[string]string{"indent_columns": "4"})
	Run(ctx, s)

	var call *chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Text == "y" {
			call = c
			return false
		}
		return true
	})
	require.NotNil(t, call)
	assert.Equal(t, 5, call.Column)
}

func TestRunKeepsOpeningBraceAtOuterLevelWhenItStartsItsOwnLine(t *testing.T) {
	s, ctx := build(t, "if (x)\n{\ny();\n}\n", map[string]string{
		"indent_columns": "4",
		"nl_if_brace":    "force",
	})
	Run(ctx, s)

	brace := findFirst(s, token.KindBraceOpenIf)
	require.NotNil(t, brace)
	assert.Equal(t, 1, brace.Column)
}

func TestRunSkipsNamespaceLevelWhenIndentNamespaceOff(t *testing.T) {
	src := "namespace n {\nint x;\n}\n"
	s, ctx := build(t, src, map[string]string{"indent_columns": "4", "indent_namespace": "0"})
	Run(ctx, s)

	x := findFirst(s, token.KindType)
	require.NotNil(t, x)
	assert.Equal(t, 1, x.Column)
}

func TestRunIndentsNamespaceBodyWhenIndentNamespaceOn(t *testing.T) {
	src := "namespace n {\nint x;\n}\n"
	s, ctx := build(t, src, map[string]string{"indent_columns": "4", "indent_namespace": "1"})
	Run(ctx, s)

	x := findFirst(s, token.KindType)
	require.NotNil(t, x)
	assert.Equal(t, 5, x.Column)
}

func TestRunLeavesColumn1CommentsAloneByDefault(t *testing.T) {
	src := "if (x) {\n// flush left\ny();\n}\n"
	s, ctx := build(t, src, map[string]string{"indent_columns": "4", "indent_col1_comment": "0"})
	Run(ctx, s)

	cmt := findFirst(s, token.KindCommentLine)
	require.NotNil(t, cmt)
	assert.Equal(t, 1, cmt.Column)
}

func TestResolveAlignGroupsCascadesShiftAcrossLine(t *testing.T) {
	// "int" is shorter than "float", so x's declared name naturally lands
	// two columns left of longname's; the align group must shift x (and
	// everything after it on its line, i.e. its ';') right to match.
	s, ctx := build(t, "int x;\nfloat longname;\n", map[string]string{
		"align_var_def_span": "3",
	})
	Run(ctx, s)

	idents := []*chunk.Chunk{}
	semis := []*chunk.Chunk{}
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == token.KindVarDefFirst {
			idents = append(idents, c)
		}
		if c.Type == token.KindSemicolon {
			semis = append(semis, c)
		}
		return true
	})
	require.Len(t, idents, 2)
	require.Len(t, semis, 2)

	// Both declared names align to the same column...
	assert.Equal(t, idents[1].Column, idents[0].Column)
	// ...and each trailing ';' follows its own (possibly shifted) identifier
	// directly, proving the cascade moved the whole rest of x's line.
	assert.Equal(t, idents[0].Column+len(idents[0].Text), semis[0].Column)
	assert.Equal(t, idents[1].Column+len(idents[1].Text), semis[1].Column)
}

func TestRunReindentsLabelToColumn1(t *testing.T) {
	src := "void f() {\ndone:\nx();\n}\n"
	s, ctx := build(t, src, map[string]string{"indent_columns": "4", "indent_label": "1"})
	Run(ctx, s)

	label := findFirst(s, token.KindLabel)
	require.NotNil(t, label)
	assert.Equal(t, 1, label.Column)
}

func TestOffsetColumnAbsoluteWhenPositive(t *testing.T) {
	st := &state{indentColumns: 4, accessSpec: 1}
	assert.Equal(t, 1, st.offsetColumn(1))
}

func TestOffsetColumnAppliesNegativeStepBack(t *testing.T) {
	st := &state{indentColumns: 4, braceStack: []token.Kind{token.KindBraceOpenClass}}
	assert.Equal(t, 1, st.offsetColumn(-1))
}
