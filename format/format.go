// Package format orchestrates the full pipeline spec.md section 2 lays
// out: L2 (Tokenizer) through L9 (Indenter), wired in the order the
// pipeline table prescribes, as a single entry point a CLI driver or
// library caller can run without knowing the stage order itself.
//
// Grounded in arduino-arduino-language-server/handler/handler.go's role as
// the one place that sequences otherwise-independent subsystems (clangd,
// the sketch mapper, the LSP connection) behind a small public surface;
// Run plays that same role for this repository's stages.
package format

import (
	"github.com/pkg/errors"

	"github.com/chunkfmt/chunkfmt/align"
	"github.com/chunkfmt/chunkfmt/cerrors"
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/combine"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/indent"
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/lexer"
	"github.com/chunkfmt/chunkfmt/levels"
	"github.com/chunkfmt/chunkfmt/logging"
	"github.com/chunkfmt/chunkfmt/newline"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/preprocess"
	"github.com/chunkfmt/chunkfmt/split"
)

// maxReconcilePasses bounds the {L6, L7, L9} loop spec.md section 2
// describes as "may run more than once (typical: 1-2 passes)". The loop
// also exits early once a pass leaves cpd.Context.DirtyCount
// unchanged, so this is a safety cap, not the normal exit condition.
const maxReconcilePasses = 4

// Result is everything a caller needs after a successful Run: the
// finalized chunk stream (ready for an external renderer, spec.md's L10)
// and the context it was built with (for ctx.ErrorCount/ctx.Logger
// inspection).
type Result struct {
	Store *chunk.Store
	Ctx   *cpd.Context
}

// Run formats src under opts, returning the finalized stream. A nil opts
// uses options.Defaults(); a nil logger discards diagnostics.
//
// Recoverable errors (spec.md section 7: UnterminatedLiteral from the
// lexer, UnmatchedCloser from the levels pass) are logged and folded into
// ctx.ErrorCount rather than
// failing Run — the caller inspects Result.Ctx.ErrorCount to decide
// whether to keep the input's backup. A *FatalError aborts before any
// formatting pass runs.
func Run(lang langflags.Mask, filename string, src []byte, opts options.Provider, logger logging.Logger) (*Result, error) {
	if opts == nil {
		opts = options.NewOrderedMapProvider(nil)
	}
	ctx := cpd.New(lang, filename, opts, logger)

	if err := validateOptions(ctx); err != nil {
		return nil, err
	}

	s, lexErrs := lexer.Lex(src, lang)
	for _, e := range lexErrs {
		ctx.BumpError()
		logging.Warnf(ctx.Logger, "%s", e.Error())
	}

	preprocess.Run(ctx, s)
	levels.Run(ctx, s)
	if err := combine.Run(ctx, s); err != nil {
		return nil, newFatal(cerrors.StackCapacity, err)
	}

	reconcile(ctx, s)

	split.Run(ctx, s)
	indent.Run(ctx, s)

	return &Result{Store: s, Ctx: ctx}, nil
}

// reconcile runs the {newline, align, indent} loop spec.md section 2
// allows to repeat: align and the brace normalizer can each retag or move
// chunks that change what the other would have done, so a second pass is
// run whenever the prior one actually changed something
// (cpd.Context.MarkChange/DirtyCount, ported from original_source's
// mark_change.cpp), capped at maxReconcilePasses.
func reconcile(ctx *cpd.Context, s *chunk.Store) {
	last := ctx.DirtyCount
	for pass := 0; pass < maxReconcilePasses; pass++ {
		newline.Run(ctx, s)
		align.Run(ctx, s)
		indent.Run(ctx, s)

		if ctx.DirtyCount == last {
			return
		}
		last = ctx.DirtyCount
	}
}

// nlCountOptions are the nl_* options that hold an absolute newline count
// rather than an IARF policy (spec.md section 7: "an nl_* option exceeds
// nl_max" is the OptionOverflow trigger). The IARF-valued nl_*_brace
// options are not counts and never participate in this check.
var nlCountOptions = []string{
	"nl_before_block_cmt",
	"nl_after_func_body",
}

// validateOptions raises OptionOverflow (fatal, per spec.md section 7)
// before any stage runs, matching the original's validate-before-format
// ordering: a miscounted nl_max is a configuration mistake, not a
// per-file formatting error.
func validateOptions(ctx *cpd.Context) error {
	nlMax := ctx.Options.Unsigned("nl_max")
	if nlMax == 0 {
		return nil
	}
	for _, name := range nlCountOptions {
		if v := ctx.Options.Unsigned(name); v > nlMax {
			return newFatal(cerrors.OptionOverflow,
				errors.Errorf("option %q = %d exceeds nl_max = %d", name, v, nlMax))
		}
	}
	return nil
}
