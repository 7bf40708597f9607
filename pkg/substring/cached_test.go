package substring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingIndex wraps an Index and counts FindAll calls.
type countingIndex struct {
	Index
	findAllCalls int
}

func (c *countingIndex) FindAll(pattern string) []int {
	c.findAllCalls++
	return c.Index.FindAll(pattern)
}

func TestCachedIndex_MemoizesFindAll(t *testing.T) {
	inner := &countingIndex{Index: NewAutomaton("banana")}
	cached := NewCached(inner, 16)

	want := []int{1, 3}
	assert.Equal(t, want, cached.FindAll("ana"))
	assert.Equal(t, want, cached.FindAll("ana"))
	assert.Equal(t, want, cached.FindAll("ana"))

	assert.Equal(t, 1, inner.findAllCalls)
	assert.Equal(t, 1, cached.Len())
}

func TestCachedIndex_CallerOwnsResult(t *testing.T) {
	cached := NewCached(NewTree("banana"), 16)

	first := cached.FindAll("ana")
	require.Equal(t, []int{1, 3}, first)

	// Mutating a returned slice must not poison later queries.
	first[0] = 999
	assert.Equal(t, []int{1, 3}, cached.FindAll("ana"))
}

func TestCachedIndex_Delegates(t *testing.T) {
	idx := NewAutomaton("banana")
	cached := NewCached(idx, 16)

	assert.Equal(t, idx.Contains("nan"), cached.Contains("nan"))
	assert.Equal(t, idx.Contains("xyz"), cached.Contains("xyz"))
	assert.Equal(t, idx.DistinctSubstrings(), cached.DistinctSubstrings())
}

func TestCachedIndex_Eviction(t *testing.T) {
	cached := NewCached(NewAutomaton("abcabcabc"), 2)

	cached.FindAll("a")
	cached.FindAll("b")
	cached.FindAll("c")

	assert.Equal(t, 2, cached.Len())
	// Evicted entries are recomputed correctly.
	assert.Equal(t, []int{0, 3, 6}, cached.FindAll("a"))
}

func TestCachedIndex_DefaultSize(t *testing.T) {
	cached := NewCached(NewAutomaton("abc"), 0)
	assert.Equal(t, []int{0}, cached.FindAll("abc"))
}

func TestCachedIndex_EmptyPattern(t *testing.T) {
	cached := NewCached(NewAutomaton("ab"), 16)
	assert.Equal(t, []int{0, 1, 2}, cached.FindAll(""))
	assert.Equal(t, []int{0, 1, 2}, cached.FindAll(""))
	assert.True(t, cached.Contains(""))
}
