package newline

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// braceOptionFor maps a role-tagged opening brace to the IARF option that
// governs its placement, following uncrustify's nl_*_brace option family
// (the "too_big_for_nl_max" catalogue names this same nl_* namespace for
// the sibling blank-line options).
var braceOptionFor = map[token.Kind]string{
	token.KindBraceOpenIf:        "nl_if_brace",
	token.KindBraceOpenElse:      "nl_else_brace",
	token.KindBraceOpenFor:       "nl_for_brace",
	token.KindBraceOpenWhile:     "nl_while_brace",
	token.KindBraceOpenSwitch:    "nl_switch_brace",
	token.KindBraceOpenDo:        "nl_do_brace",
	token.KindBraceOpenTry:       "nl_try_brace",
	token.KindBraceOpenCatch:     "nl_catch_brace",
	token.KindBraceOpenFunc:      "nl_fcn_brace",
	token.KindBraceOpenClass:     "nl_class_brace",
	token.KindBraceOpenStruct:    "nl_struct_brace",
	token.KindBraceOpenUnion:     "nl_union_brace",
	token.KindBraceOpenEnum:      "nl_enum_brace",
	token.KindBraceOpenNamespace: "nl_namespace_brace",
}

// ApplyBracePlacement walks every role-tagged opening brace and enforces
// its construct's IARF policy: Add/Force put the brace on its own line
// (breaking a one-liner if the brace wasn't already there), Remove
// attaches it to the end of the preceding line, Ignore leaves the input's
// existing placement untouched. Add and Force are not distinguished here
// ("add only if nothing says otherwise" collapses to "force" once this
// pass is the only source of brace placement).
func ApplyBracePlacement(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		name, ok := braceOptionFor[c.Type]
		if !ok {
			return true
		}
		switch ctx.Options.IARF(name) {
		case options.Add, options.Force:
			EnsureBefore(ctx, s, c)
		case options.Remove:
			RemoveBefore(ctx, s, c)
		}
		return true
	})
}

// ApplyElseCatchPlacement governs whether a "}" closing an if/try/do body
// sits on the same line as the else/catch/while keyword that follows it,
// via nl_brace_else / nl_brace_catch / nl_brace_while: a policy distinct
// from nl_else_brace/nl_catch_brace/nl_while_brace (which instead govern
// the brace that follows the keyword).
func ApplyElseCatchPlacement(ctx *cpd.Context, s *chunk.Store) {
	s.Each(func(c *chunk.Chunk) bool {
		var name string
		var wantPrev token.Kind
		switch c.Type {
		case token.KindKeywordElse, token.KindKeywordElseIf:
			name, wantPrev = "nl_brace_else", token.KindBraceCloseIf
		case token.KindKeywordCatch:
			name, wantPrev = "nl_brace_catch", token.KindBraceCloseTry
		case token.KindKeywordWhile:
			name, wantPrev = "nl_brace_while", token.KindBraceCloseDo
		default:
			return true
		}
		if prev := s.PrevNCNNL(c); prev.Type != wantPrev && prev.Type != token.KindBraceCloseCatch {
			return true
		}
		switch ctx.Options.IARF(name) {
		case options.Add, options.Force:
			EnsureBefore(ctx, s, c)
		case options.Remove:
			RemoveBefore(ctx, s, c)
		}
		return true
	})
}
