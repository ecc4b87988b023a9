// Package preprocess implements the Preprocessor Framer (spec.md section
// 4.3): a single forward pass over a lexed chunk.Store that recognizes
// '#'-leading directive lines, flags every chunk on such a line (and its
// continuation lines) with token.FlagInPreprocessor, classifies the
// directive keyword (#if/#ifdef/#ifndef/#else/#elif/#endif/#include/...),
// and maintains the pp_level conditional-compilation stack described in
// spec.md section 3.2.
//
// Grounded in the layered-pass structure of
// arduino-arduino-language-server/streams' line-oriented readers
// (original_source/src/token_enum.cpp's CT_PP_* classification table
// supplies the directive-keyword set), generalized to a push/pop level
// counter rather than the original's nested #if stack of booleans.
package preprocess

import (
	"strings"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/cpd"
	"github.com/chunkfmt/chunkfmt/token"
)

// directiveKind maps a directive keyword spelling (without the leading '#')
// to the Kind the '#' chunk itself is retagged to.
var directiveKind = map[string]token.Kind{
	"include": token.KindPPInclude,
	"define":  token.KindPPDefine,
	"undef":   token.KindPPUndef,
	"if":      token.KindPPIf,
	"ifdef":   token.KindPPIfdef,
	"ifndef":  token.KindPPIfndef,
	"else":    token.KindPPElse,
	"elif":    token.KindPPElif,
	"endif":   token.KindPPEndif,
	"pragma":  token.KindPPPragma,
	"error":   token.KindPPError,
	"warning": token.KindPPWarning,
}

// pushes directives increase pp_level for everything from the *next* line
// onward (the #if/#ifdef/#ifndef line itself is at the pre-push level, same
// as original_source's pp_level bookkeeping: the directive line reports the
// level it is nested *in*, not the level it opens).
func isPush(k token.Kind) bool {
	return k == token.KindPPIf || k == token.KindPPIfdef || k == token.KindPPIfndef
}

// Run frames the preprocessor directives in s, in place. It returns the
// chunks it reclassified so a caller (levels, combine) need not re-scan
// for KindPP* kinds.
func Run(ctx *cpd.Context, s *chunk.Store) []*chunk.Chunk {
	f := &framer{ctx: ctx, store: s}
	return f.run()
}

type framer struct {
	ctx   *cpd.Context
	store *chunk.Store

	ppLevel int
	inLine  bool // currently scanning the body of a directive line
	touched []*chunk.Chunk
}

func (f *framer) run() []*chunk.Chunk {
	atLineStart := true
	for c := f.store.GetHead(); !c.IsNull(); c = f.store.Next(c) {
		switch c.Type {
		case token.KindNewline:
			f.inLine = false
			atLineStart = true
			continue
		case token.KindWhitespace:
			continue
		}

		if atLineStart && c.Type == token.KindPPHash {
			f.startDirective(c)
			atLineStart = false
			continue
		}
		atLineStart = false

		if f.inLine {
			c.Flags = c.Flags.Set(token.FlagInPreprocessor)
			c.PPLevel = f.ppLevel
			f.touched = append(f.touched, c)
		} else {
			c.PPLevel = f.ppLevel
		}
	}
	return f.touched
}

// startDirective classifies the '#' chunk's following identifier (the
// directive keyword), retags the '#' chunk itself, and updates pp_level per
// spec.md section 4.3's push/pop contract:
//
//	#if/#ifdef/#ifndef : this line's pp_level is the *current* depth;
//	                      pp_level increases for every subsequent line
//	                      until the matching #endif.
//	#else/#elif        : pop back to the level the #if* line reported,
//	                      then push again (same net depth, new branch).
//	#endif             : pop one level; this line reports the level
//	                      *below* the body it closes.
func (f *framer) startDirective(hash *chunk.Chunk) {
	f.inLine = true
	hash.Flags = hash.Flags.Set(token.FlagInPreprocessor)

	word := f.store.Next(hash)
	for word.Type == token.KindWhitespace {
		word = f.store.Next(word)
	}
	name := strings.ToLower(word.Text)
	kind, ok := directiveKind[name]
	if !ok {
		hash.Type = token.KindPPOther
		hash.PPLevel = f.ppLevel
		f.touched = append(f.touched, hash)
		return
	}

	switch kind {
	case token.KindPPElse, token.KindPPElif:
		if f.ppLevel == 0 {
			f.ctx.Logger.Logf(token.LWarn, "%s:%d: #%s without matching #if", f.ctx.Filename, hash.OrigLine, name)
		} else {
			f.ppLevel--
		}
		hash.Type = kind
		hash.PPLevel = f.ppLevel
		f.ppLevel++
	case token.KindPPEndif:
		if f.ppLevel == 0 {
			f.ctx.Logger.Logf(token.LWarn, "%s:%d: #endif without matching #if", f.ctx.Filename, hash.OrigLine)
		} else {
			f.ppLevel--
		}
		hash.Type = kind
		hash.PPLevel = f.ppLevel
	default:
		hash.Type = kind
		hash.PPLevel = f.ppLevel
		if isPush(kind) {
			f.ppLevel++
		}
	}

	if word.Type == token.KindIdent || word.Type == token.KindKeywordIf {
		word.Type = token.KindPPBody
	}
	word.Flags = word.Flags.Set(token.FlagInPreprocessor)
	word.PPLevel = hash.PPLevel
	f.touched = append(f.touched, hash, word)
}
