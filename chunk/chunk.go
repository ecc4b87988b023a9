// Package chunk implements the Chunk Stream Model (spec.md section 3):
// a doubly-linked, mutable sequence of classified lexical units with
// ownership/parent/scope metadata. Grounded in the design note re-casting
// the original's raw pointer doubly-linked list (original_source's
// DoubleLinkedList.cpp AddAfter/AddBefore/Pop) as an arena-owned indexed
// store: chunks are identified by a non-nullable index into a slice-backed
// arena, with an explicit null index for boundary cases, and navigation
// always returns a safe sentinel rather than requiring a nil check.
package chunk

import "github.com/chunkfmt/chunkfmt/token"

// ID is a non-nullable index into a Store's arena. NullID is the sentinel
// "null chunk" (spec.md section 3.2): safe to navigate from, always
// returning itself.
type ID int

// NullID is the sentinel boundary value.
const NullID ID = 0

// Align is the transient per-chunk alignment record (spec.md section 3.3).
// Align records are set by the AlignStack that created them when it
// flushes a group, and stay on the chunk afterwards so the Indenter can
// resolve them into columns.
type Align struct {
	// Start is the first chunk of this column-group.
	Start ID
	// Next is the next chunk in the same column-group, or NullID.
	Next ID
	// Gap is the minimum whitespace between the anchor and this chunk.
	Gap int
	// RightAlign marks a right-aligned group (column is the token's right
	// edge rather than its left edge).
	RightAlign bool
}

// Chunk is the atomic unit of the stream (spec.md section 3.1).
type Chunk struct {
	id ID

	// Text is the exact source bytes of the token. Immutable once
	// tokenized, except for whitespace chunks and chunks synthesized by a
	// later stage (inserted newlines, continuation indents).
	Text string

	// Type is this chunk's primary role tag.
	Type token.Kind
	// ParentType answers "what construct am I part of".
	ParentType token.Kind
	// Flags is the PCF bitset.
	Flags token.Flags

	// OrigLine/OrigCol/OrigColEnd/OrigPrevSp are positions in the input.
	OrigLine   int
	OrigCol    int
	OrigColEnd int
	// OrigPrevSp is whether whitespace immediately preceded this token in
	// the original input.
	OrigPrevSp bool

	// Column/ColumnIndent are positions in the output, mutated by the
	// alignment/indent/split stages.
	Column       int
	ColumnIndent int

	// NlCount is, for a newline chunk, how many line terminators
	// collapsed into it.
	NlCount int

	// Level is paren+brace+angle+square nesting depth from start of file.
	Level int
	// BraceLevel is brace-only nesting depth.
	BraceLevel int
	// PPLevel is preprocessor conditional nesting depth.
	PPLevel int
	// BlockNumber is the sibling-group id described in spec.md section
	// 3.1/4.4.
	BlockNumber int

	// Align is non-nil once this chunk has joined an alignment
	// column-group.
	Align *Align

	// MatchID caches this opener/closer's paired chunk, populated by the
	// levels pass and consulted (not recomputed) by later stages per
	// spec.md section 4.1's "lookups are O(1) per step".
	MatchID ID

	next, prev ID
	deleted    bool
}

// ID returns this chunk's identity in its owning Store.
func (c *Chunk) ID() ID { return c.id }

// IsNull reports whether c is the null-chunk sentinel (either because it
// literally is the sentinel, or because c is nil — navigation helpers on
// *Store always return a non-nil *Chunk, but callers that hold a bare
// pointer across a Delete should still be able to ask).
func (c *Chunk) IsNull() bool { return c == nil || c.id == NullID }
