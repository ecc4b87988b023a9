package format

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

func run(t *testing.T, src string, opts map[string]string) *Result {
	t.Helper()
	res, err := Run(langflags.LangCPP, "test.cpp", []byte(src), options.NewOrderedMapProvider(opts), nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func chunksOfType(s *chunk.Store, k token.Kind) []*chunk.Chunk {
	var out []*chunk.Chunk
	s.Each(func(c *chunk.Chunk) bool {
		if c.Type == k {
			out = append(out, c)
		}
		return true
	})
	return out
}

func nonWhitespaceText(s *chunk.Store) string {
	var b strings.Builder
	s.Each(func(c *chunk.Chunk) bool {
		if token.IsWhitespaceOrNewline(c.Type) {
			return true
		}
		b.WriteString(c.Text)
		return true
	})
	return b.String()
}

func TestRunProducesAFinalizedStream(t *testing.T) {
	res := run(t, "int x = 1;\n", nil)
	assert.Equal(t, 0, res.Ctx.ErrorCount)
	res.Store.Each(func(c *chunk.Chunk) bool {
		assert.GreaterOrEqual(t, c.Column, 1)
		return true
	})
}

// TestRunPreservesNonWhitespaceTokens exercises spec.md section 8's
// "Token preservation" invariant on an input that triggers no
// content-rewriting option (mod_infinite_loop, enum_last_comma off).
func TestRunPreservesNonWhitespaceTokens(t *testing.T) {
	src := "int f(int a,int b){return a+b;}\n"
	res := run(t, src, nil)
	got := nonWhitespaceText(res.Store)
	want := strings.NewReplacer(" ", "", "\n", "").Replace(src)
	assert.Equal(t, want, got)
}

// TestRunReconcileReachesAFixedPoint exercises spec.md section 8's
// idempotence invariant indirectly: re-tokenizing a finalized stream
// needs it rendered back to text, which these tests do not do (the CLI's
// minimal renderer lives in cmd/chunkfmt and is not used here), so instead we
// assert that a second Run from the same source/options reaches the same
// DirtyCount, i.e. a stable fixed point rather than perpetually
// re-marking changes.
func TestRunReconcileReachesAFixedPoint(t *testing.T) {
	src := "int x=5;\ndouble yy=3.14;\n"
	opts := map[string]string{"align_var_def_span": "2", "align_assign_span": "2"}

	res1 := run(t, src, opts)
	res2 := run(t, src, opts)
	assert.Equal(t, res1.Ctx.DirtyCount, res2.Ctx.DirtyCount)
}

// TestRunAlignsVariableBlock exercises spec.md section 8 scenario 1.
func TestRunAlignsVariableBlock(t *testing.T) {
	src := "int x=5;\ndouble yy=3.14;\nchar *name=\"bob\";\n"
	res := run(t, src, map[string]string{
		"align_var_def_span":       "2",
		"align_assign_span":        "2",
		"align_var_def_star_style": "2",
	})

	idents := chunksOfType(res.Store, token.KindVarDefFirst)
	var x, yy, name *chunk.Chunk
	for _, id := range idents {
		switch id.Text {
		case "x":
			x = id
		case "yy":
			yy = id
		case "name":
			name = id
		}
	}
	require.NotNil(t, x)
	require.NotNil(t, yy)
	require.NotNil(t, name)
	assert.Equal(t, x.Column, yy.Column)
	assert.Equal(t, yy.Column, name.Column)

	assigns := chunksOfType(res.Store, token.KindAssign)
	require.Len(t, assigns, 3)
	assert.Equal(t, assigns[0].Column, assigns[1].Column)
	assert.Equal(t, assigns[1].Column, assigns[2].Column)
}

// TestRunCanonicalizesInfiniteLoop exercises spec.md section 8 scenario 2.
func TestRunCanonicalizesInfiniteLoop(t *testing.T) {
	res := run(t, "while (1) { body(); }\n", map[string]string{"mod_infinite_loop": "for"})

	fors := chunksOfType(res.Store, token.KindKeywordFor)
	require.Len(t, fors, 1)
	assert.Equal(t, "for", fors[0].Text)

	semis := chunksOfType(res.Store, token.KindSemicolon)
	// two inside the now-empty for(;;), one after body()
	assert.GreaterOrEqual(t, len(semis), 3)

	opens := chunksOfType(res.Store, token.KindBraceOpenFor)
	assert.Len(t, opens, 1)
}

func TestRunRejectsOptionOverflow(t *testing.T) {
	_, err := Run(langflags.LangCPP, "test.cpp", []byte("int x;\n"), options.NewOrderedMapProvider(map[string]string{
		"nl_max":              "1",
		"nl_before_block_cmt": "5",
	}), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOptionOverflow)
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
}

// scenario is the shape of one entry in testdata/scenarios.yaml.
type scenario struct {
	Name               string            `yaml:"name"`
	Description        string            `yaml:"description"`
	Src                string            `yaml:"src"`
	Options            map[string]string `yaml:"options"`
	ExpectContinuation bool              `yaml:"expect_continuation"`
	ExpectOneLinerKept *bool             `yaml:"expect_oneliner_kept"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var out []scenario
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out)
	return out
}

func TestRunScenariosFromYAML(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			res := run(t, sc.Src, sc.Options)

			if sc.ExpectContinuation {
				var saw bool
				res.Store.Each(func(c *chunk.Chunk) bool {
					if c.Flags.Has(token.FlagContinuationLine) {
						saw = true
						return false
					}
					return true
				})
				assert.True(t, saw, "expected a continuation-line chunk")
			}

			if sc.ExpectOneLinerKept != nil {
				var sawOneLiner bool
				res.Store.Each(func(c *chunk.Chunk) bool {
					if c.Flags.Has(token.FlagOneLiner) {
						sawOneLiner = true
						return false
					}
					return true
				})
				assert.Equal(t, *sc.ExpectOneLinerKept, sawOneLiner)
			}
		})
	}
}
