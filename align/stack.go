// Package align implements the Alignment Engine (spec.md section 4.7):
// the AlignStack column-grouping state machine plus a representative
// subset of align_all's named passes.
package align

import (
	"github.com/chunkfmt/chunkfmt/chunk"
	"github.com/chunkfmt/chunkfmt/token"
)

// StarStyle controls how a leading run of '*'/'&' tokens participates in
// a candidate's alignment column.
type StarStyle int

const (
	// StarIgnore never looks past the candidate itself.
	StarIgnore StarStyle = iota
	// StarInclude anchors the column at the first '*'/'&' of the run.
	StarInclude
	// StarDangle anchors the column at the candidate itself, leaving the
	// '*'/'&' run attached to whatever precedes it.
	StarDangle
)

var nextStackID int

// Stack is the AlignStack state machine: a pair of chunk lists (aligned,
// skipped) plus the span/threshold/gap/style knobs that govern how a
// column-group forms. Grounded in original_source's align/stack.h field
// list; Flush/End commit a group by linking its members into a
// chunk.Align chain rather than writing a final Column directly, since
// column resolution is the Indenter's job (spec.md section 3.3: "Align
// records are owned by the AlignStack that created them").
type Stack struct {
	store *chunk.Store

	aligned []*chunk.Chunk
	skipped []*chunk.Chunk

	minCol int
	maxCol int

	Span   int
	Thresh int
	Gap    int

	RightAlign bool
	StarStyle  StarStyle
	AmpStyle   StarStyle
	SkipFirst  bool

	nlSinceAdd int
	lastAdded  int // 0=none, 1=aligned, 2=skipped

	stackID int
}

// New allocates a Stack bound to s. Call Start before the first Add.
func New(s *chunk.Store) *Stack {
	return &Stack{store: s}
}

// Start begins a new group: resets both lists and counters, and records a
// fresh stack id (for parity with the original's debug-only stackID；no
// behavior depends on its value here).
func (as *Stack) Start(span, thresh int) {
	as.aligned = nil
	as.skipped = nil
	as.minCol = 0
	as.maxCol = 0
	as.Span = span
	as.Thresh = thresh
	as.nlSinceAdd = 0
	as.lastAdded = 0
	nextStackID++
	as.stackID = nextStackID
}

// Len reports how many chunks (aligned + skipped) this group currently
// holds.
func (as *Stack) Len() int { return len(as.aligned) + len(as.skipped) }

// anchorFor applies the star/amp style to find the chunk whose OrigCol is
// this candidate's effective alignment column.
func (as *Stack) anchorFor(c *chunk.Chunk) *chunk.Chunk {
	if as.StarStyle != StarInclude && as.AmpStyle != StarInclude {
		return c
	}
	first := c
	for {
		p := as.store.Prev(first)
		switch {
		case p.Type == token.KindStar && as.StarStyle == StarInclude:
		case p.Type == token.KindAmp && as.AmpStyle == StarInclude:
		default:
			return first
		}
		first = p
	}
}

// Add adds a candidate chunk. If its effective column would land further
// than Thresh from the group's current max_col, it's diverted to skipped
// (it may still join a later group once this one flushes); otherwise it
// joins aligned and min_col/max_col update.
func (as *Stack) Add(c *chunk.Chunk) {
	if as.SkipFirst && len(as.aligned) == 0 && len(as.skipped) == 0 {
		as.skipped = append(as.skipped, c)
		as.lastAdded = 2
		return
	}

	anchor := as.anchorFor(c)
	col := anchor.OrigCol

	if len(as.aligned) > 0 && as.Thresh > 0 {
		diff := col - as.maxCol
		if diff < 0 {
			diff = -diff
		}
		if diff > as.Thresh {
			as.skipped = append(as.skipped, c)
			as.lastAdded = 2
			return
		}
	}

	as.aligned = append(as.aligned, c)
	if len(as.aligned) == 1 || col < as.minCol {
		as.minCol = col
	}
	if col > as.maxCol {
		as.maxCol = col
	}
	as.nlSinceAdd = 0
	as.lastAdded = 1
}

// NewLines advances the since-last-add newline counter; once it exceeds
// Span (when Span is set), the current group commits via Flush.
func (as *Stack) NewLines(n int) {
	if len(as.aligned) == 0 {
		return
	}
	as.nlSinceAdd += n
	if as.Span > 0 && as.nlSinceAdd > as.Span {
		as.Flush()
	}
}

// Flush commits the current aligned group: every member is linked into a
// chunk.Align chain anchored at the group's first member, carrying Gap
// and RightAlign for the Indenter to resolve into a real column. skipped
// members are then re-added to the fresh group, since they may still
// cluster with whatever comes next.
func (as *Stack) Flush() {
	if len(as.aligned) > 1 || (len(as.aligned) == 1 && !as.SkipFirst) {
		anchorID := as.aligned[0].ID()
		for i, c := range as.aligned {
			c.Flags = c.Flags.Set(token.FlagWasAligned)
			al := &chunk.Align{Start: anchorID, Gap: as.Gap, RightAlign: as.RightAlign}
			if i+1 < len(as.aligned) {
				al.Next = as.aligned[i+1].ID()
			}
			c.Align = al
		}
		as.aligned[0].Flags = as.aligned[0].Flags.Set(token.FlagAlignStart)
	}

	skipped := as.skipped
	as.aligned = nil
	as.skipped = nil
	as.minCol = 0
	as.maxCol = 0
	as.nlSinceAdd = 0

	for _, c := range skipped {
		as.Add(c)
	}
}

// Reset discards the current group without committing any Align links.
func (as *Stack) Reset() {
	as.aligned = nil
	as.skipped = nil
	as.minCol = 0
	as.maxCol = 0
	as.nlSinceAdd = 0
	as.lastAdded = 0
}

// End performs a final Flush, draining skipped members until no more
// re-cluster (or the list stops shrinking, which breaks an unproductive
// loop rather than spinning forever).
func (as *Stack) End() {
	for len(as.aligned) > 0 || len(as.skipped) > 0 {
		before := len(as.skipped)
		as.Flush()
		if len(as.skipped) >= before && len(as.aligned) == 0 {
			as.skipped = nil
			return
		}
	}
}
