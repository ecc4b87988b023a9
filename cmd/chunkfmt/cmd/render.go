package cmd

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// render is the minimal external renderer spec.md's Non-goals leave
// unspecified beyond "emit bytes from the finalized stream" (L10): every
// chunk already carries its final Column by the time format.Run returns
// (package indent computes one for every chunk, not only line leaders),
// so rendering is just "pad with spaces up to Column, then write Text"
// with a newline run per KindNewline/KindNewlineCont's NlCount.
//
// Tab/space output expansion is explicitly out of scope (spec.md's
// Non-goals: "no tab/space output expansion"), so this always pads with
// spaces regardless of indent_with_tabs.
func render(s *chunk.Store) []byte {
	var buf bytes.Buffer
	col := 1
	s.Each(func(c *chunk.Chunk) bool {
		switch {
		case c.Type == token.KindNewline || c.Type == token.KindNewlineCont:
			n := c.NlCount
			if n < 1 {
				n = 1
			}
			buf.WriteString(strings.Repeat("\n", n))
			col = 1
			return true
		case c.Type == token.KindWhitespace:
			return true
		}

		if c.Column > col {
			buf.WriteString(strings.Repeat(" ", c.Column-col))
			col = c.Column
		}
		buf.WriteString(c.Text)
		col += utf8.RuneCountInString(c.Text)
		return true
	})
	return buf.Bytes()
}
