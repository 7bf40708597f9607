package substring

// Index answers substring queries over one immutable text.
//
// Implementations must be safe for concurrent queries once constructed.
type Index interface {
	// Contains reports whether pattern occurs in the indexed text.
	// The empty pattern is contained in every text, including the empty one.
	Contains(pattern string) bool

	// FindAll returns the starting rune offset of every occurrence of
	// pattern in the indexed text, in ascending order with no duplicates.
	// Overlapping occurrences are all reported.
	//
	// Returns an empty slice (not nil) if pattern does not occur. The empty
	// pattern matches before every rune and after the last one, so
	// FindAll("") returns [0..len] inclusive.
	//
	// The returned slice is owned by the caller.
	FindAll(pattern string) []int

	// DistinctSubstrings returns the number of distinct non-empty
	// substrings of the indexed text.
	DistinctSubstrings() int64
}

// allPositions returns the FindAll result for the empty pattern over a text
// of n runes: every boundary position 0..n inclusive.
func allPositions(n int) []int {
	out := make([]int, n+1)
	for i := range out {
		out[i] = i
	}
	return out
}
