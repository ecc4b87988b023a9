package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/format"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/options"
)

func TestRenderPadsToColumnAndJoinsNewlines(t *testing.T) {
	res, err := format.Run(langflags.LangCPP, "t.cpp", []byte("if (x) {\ny();\n}\n"), options.NewOrderedMapProvider(map[string]string{
		"indent_columns": "4",
	}), nil)
	require.NoError(t, err)

	out := string(render(res.Store))
	assert.Contains(t, out, "if (x)")
	assert.Contains(t, out, "    y();")
}

func TestBuildOptionsAppliesOverridesOverConfig(t *testing.T) {
	opts := buildOptions(map[string]string{"code_width": "40"})
	assert.Equal(t, uint(40), opts.Unsigned("code_width"))
}
