// Package combine implements the Combiner (spec.md section 4.5): the
// contextual re-tagging pass that takes the raw lexical Kind the Tokenizer
// assigned and refines it using the surrounding stream — star/ampersand
// disambiguation, angle-bracket disambiguation, paren-role classification,
// variable-definition marking, and a handful of named cleanup passes.
//
// Grounded in original_source's per-concern file split (combine.cpp's
// monolithic "second look at every token" pass has, in this spec's
// lineage, already been broken up into enum_cleanup.cpp, mark_change.cpp,
// rewrite_infinite_loops.cpp and friends — this package keeps that same
// one-file-per-concern shape rather than re-merging them), and on
// arduino-arduino-language-server's handler/handler.go request-dispatch
// pattern (cpd.Context.Logger-tagged, pkg/errors-wrapped recoverable
// failures) for the package's error handling idiom.
package combine

import (
	"github.com/pkg/errors"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
)

// Run executes every Combiner sub-pass over s, in the order spec.md
// section 4.5 implies: disambiguation passes first (star/amp, angles, then
// paren roles depend on what came before them), then the structural
// markers (variable-definitions, ternary matching) that consult the
// now-refined kinds, then the named cleanup passes.
func Run(ctx *cpd.Context, s *chunk.Store) error {
	if !ctx.EnterRecursion() {
		return errors.Errorf("combine: recursion depth exceeded (max %d)", cpd.MaxRecursionDepth)
	}
	defer ctx.ExitRecursion()

	resolveStarAmp(s)
	resolveAngles(ctx, s)
	classifyParens(s)
	markBraceRoles(s)
	markVarDefs(ctx, s)
	matchTernaries(ctx, s)
	markLabelsAndAccess(ctx, s)
	markParamPacks(ctx, s)
	markOperatorShift(ctx, s)
	markTrailingReturn(ctx, s)

	EnumCleanup(ctx, s)
	ParameterPackCleanup(ctx, s)
	RewriteInfiniteLoops(ctx, s)

	return nil
}
