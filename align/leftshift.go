package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/options"
	"github.com/chunkfmt/chunkfmt/token"
)

// LeftShift aligns chained "<<" stream-insertion operators onto a common
// column, per original_source's align/left_shift.cpp. A change in
// preprocessor status, a drop in brace/paren level, or a semicolon at the
// start level all flush the running group; operator<< (tagged by combine's
// operator overload handling) is skipped, since it is a declaration, not a
// stream write.
func LeftShift(s *chunk.Store, opts options.Provider) {
	as := New(s)
	as.Start(255, 0)

	var start *chunk.Chunk
	s.Each(func(pc *chunk.Chunk) bool {
		switch {
		case start != nil && pc.Flags.Has(token.FlagInPreprocessor) != start.Flags.Has(token.FlagInPreprocessor):
			as.Flush()
			start = nil
		case pc.Type == token.KindNewline || pc.Type == token.KindNewlineCont:
			as.NewLines(pc.NlCount)
			return true
		case start != nil && pc.Level < start.Level:
			as.Flush()
			start = nil
		case start != nil && pc.Level > start.Level:
			return true
		case pc.Type == token.KindSemicolon:
			as.Flush()
			start = nil
		}

		if pc.Type != token.KindShiftLeft {
			if as.Len() > 0 {
				if prev := s.Prev(pc); isNewline(prev.Type) {
					indentContinuation(s, pc, opts)
				}
			}
			return true
		}
		if pc.ParentType == token.KindKeywordOperator {
			return true
		}

		if as.Len() == 0 {
			if prev := s.Prev(pc); !prev.IsNull() && isNewline(prev.Type) {
				indentContinuation(s, pc, opts)
			}
			as.Add(pc)
			start = pc
		} else if prev := s.Prev(pc); !prev.IsNull() && isNewline(prev.Type) {
			as.Add(pc)
		}
		return true
	})
	as.End()
}

func indentContinuation(s *chunk.Store, pc *chunk.Chunk, opts options.Provider) {
	pc.ColumnIndent = pc.ColumnIndent + int(opts.Unsigned("indent_columns"))
	pc.Column = pc.ColumnIndent
	pc.Flags = pc.Flags.Set(token.FlagDontIndent)
}

func isNewline(k token.Kind) bool {
	return k == token.KindNewline || k == token.KindNewlineCont
}
