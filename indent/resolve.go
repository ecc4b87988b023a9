package indent

import "github.com/chunkfmt/chunkfmt/chunk"

// alignGroup collects every chunk that shares one chunk.Align chain's
// Start anchor, in the order they occur in the stream.
type alignGroup struct {
	rightAlign bool
	gap        int
	members    []*chunk.Chunk
}

// resolveAlignGroups resolves every chunk.Align chain left by package
// align into concrete columns, processing groups in the order their first
// member appears in the stream so an earlier group's cascade is already
// reflected in the natural columns a later group reads (spec.md section
// 8's "int    x    = 5;" scenario: the variable-name group widens the
// line before the '=' group ever looks at it).
func resolveAlignGroups(s *chunk.Store) {
	groups := map[chunk.ID]*alignGroup{}
	var order []chunk.ID

	s.Each(func(c *chunk.Chunk) bool {
		if c.Align == nil {
			return true
		}
		g, ok := groups[c.Align.Start]
		if !ok {
			g = &alignGroup{rightAlign: c.Align.RightAlign, gap: c.Align.Gap}
			groups[c.Align.Start] = g
			order = append(order, c.Align.Start)
		}
		g.members = append(g.members, c)
		return true
	})

	for _, id := range order {
		resolveGroup(s, groups[id])
	}
}

// resolveGroup computes the group's common target column (the widest
// member's natural left edge, or right edge for a right-aligned group),
// then shifts every member (and the rest of its line) to reach it,
// enforcing the group's minimum Gap against whatever immediately precedes
// each member.
func resolveGroup(s *chunk.Store, g *alignGroup) {
	if len(g.members) == 0 {
		return
	}

	target := 0
	for _, m := range g.members {
		edge := m.Column
		if g.rightAlign {
			edge += chunkWidth(m)
		}
		if edge > target {
			target = edge
		}
	}

	for _, m := range g.members {
		newCol := target
		if g.rightAlign {
			newCol = target - chunkWidth(m)
		}

		if prev := s.Prev(m); !prev.IsNull() && !isNewlineKind(prev.Type) {
			minCol := prev.Column + chunkWidth(prev) + g.gap
			if newCol < minCol {
				newCol = minCol
			}
		}
		if newCol < 1 {
			newCol = 1
		}

		if delta := newCol - m.Column; delta != 0 {
			shiftLine(s, m, delta)
		}
	}
}

// shiftLine applies delta to start's Column and every later chunk's
// Column up to (but not including) the next newline, so a column group's
// resolution doesn't leave the rest of the line misaligned with it.
func shiftLine(s *chunk.Store, start *chunk.Chunk, delta int) {
	for c := start; !c.IsNull() && !isNewlineKind(c.Type); c = s.Next(c) {
		c.Column += delta
	}
}
