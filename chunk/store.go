package chunk

import "github.com/chunkfmt/chunkfmt/token"

// Store owns every chunk in a stream. All other pipeline components go
// through it; a chunk is exclusively owned by its Store, and once deleted
// must not be dereferenced (Delete unlinks it and marks it deleted; later
// navigation calls treat a deleted id as the null sentinel).
type Store struct {
	arena []*Chunk
	head  ID
	tail  ID
}

// NewStore returns an empty store. Index 0 of the arena is permanently the
// null-chunk sentinel: all-zero Chunk, self-linked, IsNull() == true.
func NewStore() *Store {
	s := &Store{arena: make([]*Chunk, 1)}
	s.arena[0] = &Chunk{id: NullID, next: NullID, prev: NullID, deleted: true}
	return s
}

// chunkAt returns a pointer into the arena for id, clamping any
// out-of-range or deleted id to the null sentinel. This is the single
// choke point that makes every navigation method "safe": it never panics
// and never returns nil.
func (s *Store) chunkAt(id ID) *Chunk {
	if id <= NullID || int(id) >= len(s.arena) || s.arena[id].deleted {
		return s.arena[NullID]
	}
	return s.arena[id]
}

// Get returns the chunk for id (or the null sentinel if id is invalid).
func (s *Store) Get(id ID) *Chunk { return s.chunkAt(id) }

// Create allocates a new, unlinked chunk. The caller must immediately
// position it via InsertAfter/InsertBefore (spec.md section 4.1:
// "create(...) -> chunk: append-construct a chunk; caller positions it via
// insert-after/before").
func (s *Store) Create(text string, typ token.Kind, flags token.Flags) *Chunk {
	id := ID(len(s.arena))
	s.arena = append(s.arena, &Chunk{
		id: id, Text: text, Type: typ, Flags: flags,
		next: NullID, prev: NullID,
	})
	return s.arena[id]
}

// GetHead returns the first chunk in the stream (null sentinel if empty).
func (s *Store) GetHead() *Chunk { return s.chunkAt(s.head) }

// GetTail returns the last chunk in the stream (null sentinel if empty).
func (s *Store) GetTail() *Chunk { return s.chunkAt(s.tail) }

// InsertAfter links new immediately after ref. If ref is the null
// sentinel, new is appended at the tail, or becomes the sole element
// (head==tail==new) when the stream is empty; this matches the convention
// that appending is "insert after null".
func (s *Store) InsertAfter(ref *Chunk, newChunk *Chunk) {
	if ref.IsNull() {
		// Append at tail, or become the only element.
		if s.tail == NullID {
			s.head, s.tail = newChunk.id, newChunk.id
			newChunk.prev, newChunk.next = NullID, NullID
			return
		}
		ref = s.chunkAt(s.tail)
	}
	next := s.chunkAt(ref.next)
	newChunk.prev = ref.id
	newChunk.next = ref.next
	ref.next = newChunk.id
	if next.IsNull() {
		s.tail = newChunk.id
	} else {
		next.prev = newChunk.id
	}
}

// InsertBefore links new immediately before ref, mirroring InsertAfter.
func (s *Store) InsertBefore(ref *Chunk, newChunk *Chunk) {
	if ref.IsNull() {
		if s.head == NullID {
			s.head, s.tail = newChunk.id, newChunk.id
			newChunk.prev, newChunk.next = NullID, NullID
			return
		}
		ref = s.chunkAt(s.head)
	}
	prev := s.chunkAt(ref.prev)
	newChunk.next = ref.id
	newChunk.prev = ref.prev
	ref.prev = newChunk.id
	if prev.IsNull() {
		s.head = newChunk.id
	} else {
		prev.next = newChunk.id
	}
}

// Delete unlinks c from the stream and marks it deleted. Future
// navigation into c (by stale callers still holding the pointer) is safe:
// chunkAt treats a deleted slot as the null sentinel.
func (s *Store) Delete(c *Chunk) {
	if c.IsNull() {
		return
	}
	prev := s.chunkAt(c.prev)
	next := s.chunkAt(c.next)
	if prev.IsNull() {
		s.head = c.next
	} else {
		prev.next = c.next
	}
	if next.IsNull() {
		s.tail = c.prev
	} else {
		next.prev = c.prev
	}
	c.deleted = true
	c.next, c.prev = NullID, NullID
}

// --- navigation: "all" scope ---

// Next returns the chunk immediately after c (null sentinel at tail).
func (s *Store) Next(c *Chunk) *Chunk { return s.chunkAt(c.next) }

// Prev returns the chunk immediately before c (null sentinel at head).
func (s *Store) Prev(c *Chunk) *Chunk { return s.chunkAt(c.prev) }

// NextNC skips comment chunks (but not newlines).
func (s *Store) NextNC(c *Chunk) *Chunk {
	n := s.Next(c)
	for !n.IsNull() && token.IsComment(n.Type) {
		n = s.Next(n)
	}
	return n
}

// PrevNC skips comment chunks (but not newlines).
func (s *Store) PrevNC(c *Chunk) *Chunk {
	p := s.Prev(c)
	for !p.IsNull() && token.IsComment(p.Type) {
		p = s.Prev(p)
	}
	return p
}

// NextNCNNL skips comments, newlines, and newline-continuations — the
// "next non-comment non-newline" cursor used pervasively by the Combiner
// and Alignment Engine.
func (s *Store) NextNCNNL(c *Chunk) *Chunk {
	n := s.Next(c)
	for !n.IsNull() && (token.IsComment(n.Type) || token.IsWhitespaceOrNewline(n.Type)) {
		n = s.Next(n)
	}
	return n
}

// PrevNCNNL is the backward analogue of NextNCNNL.
func (s *Store) PrevNCNNL(c *Chunk) *Chunk {
	p := s.Prev(c)
	for !p.IsNull() && (token.IsComment(p.Type) || token.IsWhitespaceOrNewline(p.Type)) {
		p = s.Prev(p)
	}
	return p
}

// NextNNL skips newline/newline-continuation chunks only (comments stop
// the walk).
func (s *Store) NextNNL(c *Chunk) *Chunk {
	n := s.Next(c)
	for !n.IsNull() && token.IsWhitespaceOrNewline(n.Type) {
		n = s.Next(n)
	}
	return n
}

// NextNewline returns the next KindNewline/KindNewlineCont chunk, or null
// if there is none before EOF.
func (s *Store) NextNewline(c *Chunk) *Chunk {
	n := s.Next(c)
	for !n.IsNull() && n.Type != token.KindNewline && n.Type != token.KindNewlineCont {
		n = s.Next(n)
	}
	return n
}

// NextOfType returns the first chunk after c whose Type == typ and whose
// Level == level, scanning forward, or the null sentinel if none exists
// before the stream unwinds past level (i.e. the level drops below level).
func (s *Store) NextOfType(c *Chunk, typ token.Kind, level int) *Chunk {
	n := s.Next(c)
	for !n.IsNull() {
		if n.Level < level {
			return s.chunkAt(NullID)
		}
		if n.Type == typ && n.Level == level {
			return n
		}
		n = s.Next(n)
	}
	return n
}

// GetClosingParen pairs any opener with its matching closer at the same
// level: a forward walk tracking level deltas, succeeding only when the
// level returns exactly to the opener's level minus one (spec.md section
// 3.2's invariant: "get_closing_paren returns a chunk with the
// paired-closer type and the same level - 1 after applying the closer")
// and the chunk found is the paired closer kind (spec.md section 4.1,
// "Algorithmic notes").
//
// When the levels pass (package levels) has already run and populated
// MatchID, this is an O(1) lookup; otherwise it falls back to the O(n)
// forward scan so the method remains correct even before that pass runs
// (e.g. when called speculatively by the tokenizer/preprocessor framer).
func (s *Store) GetClosingParen(opener *Chunk) *Chunk {
	if opener.IsNull() || !token.IsOpener(opener.Type) {
		return s.chunkAt(NullID)
	}
	if opener.MatchID != NullID {
		return s.chunkAt(opener.MatchID)
	}
	closerKind, ok := closerFor(opener.Type)
	if !ok {
		return s.chunkAt(NullID)
	}
	closerLevel := opener.Level - 1
	n := s.Next(opener)
	for !n.IsNull() {
		if n.Level == closerLevel && n.Type == closerKind {
			return n
		}
		if n.Level < closerLevel {
			break
		}
		n = s.Next(n)
	}
	return s.chunkAt(NullID)
}

// closerFor maps every opener role-tag to its paired closer role-tag, used
// by GetClosingParen's fallback scan and by the levels pass.
func closerFor(open token.Kind) (token.Kind, bool) {
	m := map[token.Kind]token.Kind{
		token.KindBraceOpen:               token.KindBraceClose,
		token.KindParenOpen:               token.KindParenClose,
		token.KindSquareOpen:              token.KindSquareClose,
		token.KindAngleOpen:               token.KindAngleClose,
		token.KindFParenOpen:              token.KindFParenClose,
		token.KindLParenOpen:              token.KindLParenClose,
		token.KindSParenOpen:              token.KindSParenClose,
		token.KindTParenOpen:              token.KindTParenClose,
		token.KindCastParenOpen:           token.KindCastParenClose,
		token.KindMacroFuncCallParenOpen:  token.KindMacroFuncCallParenClose,
		token.KindBraceOpenFunc:           token.KindBraceCloseFunc,
		token.KindBraceOpenIf:             token.KindBraceCloseIf,
		token.KindBraceOpenElse:           token.KindBraceCloseElse,
		token.KindBraceOpenSwitch:         token.KindBraceCloseSwitch,
		token.KindBraceOpenNamespace:      token.KindBraceCloseNamespace,
		token.KindBraceOpenClass:          token.KindBraceCloseClass,
		token.KindBraceOpenEnum:           token.KindBraceCloseEnum,
		token.KindBraceOpenStruct:         token.KindBraceCloseStruct,
		token.KindBraceOpenUnion:          token.KindBraceCloseUnion,
		token.KindBraceOpenTry:            token.KindBraceCloseTry,
		token.KindBraceOpenCatch:          token.KindBraceCloseCatch,
		token.KindBraceOpenDo:             token.KindBraceCloseDo,
		token.KindBraceOpenWhile:          token.KindBraceCloseWhile,
		token.KindBraceOpenFor:            token.KindBraceCloseFor,
		token.KindBraceInit:               token.KindBraceClose,
		token.KindAngleOpenTemplate:       token.KindAngleCloseTemplate,
		token.KindAngleOpenGeneric:        token.KindAngleCloseGeneric,
	}
	k, ok := m[open]
	return k, ok
}

// CloserFor is the exported form of closerFor, used by the levels pass.
func CloserFor(open token.Kind) (token.Kind, bool) { return closerFor(open) }

// Each walks every chunk in stream order from head to tail, calling fn.
// Stopping early is done by fn returning false.
func (s *Store) Each(fn func(c *Chunk) bool) {
	for c := s.GetHead(); !c.IsNull(); c = s.Next(c) {
		if !fn(c) {
			return
		}
	}
}

// Len reports the number of live (non-deleted, non-sentinel) chunks.
func (s *Store) Len() int {
	n := 0
	s.Each(func(*Chunk) bool { n++; return true })
	return n
}
