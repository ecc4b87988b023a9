package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chunkfmt/chunkfmt/token"
)

func TestNullChunkIsSafeToNavigate(t *testing.T) {
	s := NewStore()
	null := s.Get(NullID)
	require.True(t, null.IsNull())
	assert.True(t, s.Next(null).IsNull())
	assert.True(t, s.Prev(null).IsNull())
	assert.True(t, s.NextNC(null).IsNull())
	assert.True(t, s.GetClosingParen(null).IsNull())
}

func TestInsertAfterBuildsStreamOrder(t *testing.T) {
	s := NewStore()
	a := s.Create("a", token.KindIdent, 0)
	s.InsertAfter(s.Get(NullID), a)
	b := s.Create("b", token.KindIdent, 0)
	s.InsertAfter(a, b)
	c := s.Create("c", token.KindIdent, 0)
	s.InsertAfter(b, c)

	require.Equal(t, "a", s.GetHead().Text)
	require.Equal(t, "c", s.GetTail().Text)
	assert.Equal(t, "b", s.Next(a).Text)
	assert.Equal(t, "a", s.Prev(b).Text)
	assert.True(t, s.Next(c).IsNull())
	assert.True(t, s.Prev(a).IsNull())
}

func TestInsertBeforeAndDelete(t *testing.T) {
	s := NewStore()
	a := s.Create("a", token.KindIdent, 0)
	s.InsertAfter(s.Get(NullID), a)
	c := s.Create("c", token.KindIdent, 0)
	s.InsertAfter(a, c)
	b := s.Create("b", token.KindIdent, 0)
	s.InsertBefore(c, b)

	assertOrder(t, s, "a", "b", "c")

	s.Delete(b)
	assertOrder(t, s, "a", "c")
	// b is unlinked; navigating from a stale pointer into it is safe.
	assert.True(t, s.Next(b).IsNull())
}

func TestGetClosingParenMatchesAtSameLevel(t *testing.T) {
	s := NewStore()
	open := s.Create("(", token.KindParenOpen, 0)
	open.Level = 1
	s.InsertAfter(s.Get(NullID), open)

	inner := s.Create("x", token.KindIdent, 0)
	inner.Level = 1
	s.InsertAfter(open, inner)

	nestedOpen := s.Create("(", token.KindParenOpen, 0)
	nestedOpen.Level = 2
	s.InsertAfter(inner, nestedOpen)
	nestedClose := s.Create(")", token.KindParenClose, 0)
	nestedClose.Level = 1
	s.InsertAfter(nestedOpen, nestedClose)

	close := s.Create(")", token.KindParenClose, 0)
	close.Level = 0
	s.InsertAfter(nestedClose, close)

	got := s.GetClosingParen(open)
	require.False(t, got.IsNull())
	assert.Equal(t, close.ID(), got.ID())
}

func assertOrder(t *testing.T, s *Store, want ...string) {
	t.Helper()
	var got []string
	s.Each(func(c *Chunk) bool {
		got = append(got, c.Text)
		return true
	})
	assert.Equal(t, want, got)
}
