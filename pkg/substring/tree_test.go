package substring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Contains(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    bool
	}{
		{"prefix", "banana", "ban", true},
		{"middle", "banana", "ana", true},
		{"overlapping interior", "banana", "nan", true},
		{"suffix", "banana", "na", true},
		{"whole text", "banana", "banana", true},
		{"longer than text", "banana", "bananab", false},
		{"absent", "banana", "xyz", false},
		{"shares edge prefix only", "banana", "band", false},
		{"empty pattern", "banana", "", true},
		{"empty text empty pattern", "", "", true},
		{"empty text", "", "a", false},
		{"case sensitive hit", "bAnAnA", "AnA", true},
		{"case sensitive miss", "bAnAnA", "ana", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewTree(tt.text)
			assert.Equal(t, tt.want, idx.Contains(tt.pattern))
		})
	}
}

func TestTree_FindAll(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"two occurrences", "banana", "ana", []int{1, 3}},
		{"suffix occurrences", "banana", "na", []int{2, 4}},
		{"single rune", "banana", "a", []int{1, 3, 5}},
		{"prefix only", "banana", "ban", []int{0}},
		{"interior", "banana", "nan", []int{2}},
		{"whole text", "banana", "banana", []int{0}},
		{"absent", "banana", "xyz", []int{}},
		{"mid-edge mismatch", "banana", "band", []int{}},
		{"overlapping runs", "aaaa", "aa", []int{0, 1, 2}},
		{"period three", "abcabcabc", "abc", []int{0, 3, 6}},
		{"period three shifted", "abcabcabc", "cab", []int{2, 5}},
		{"empty text", "", "a", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewTree(tt.text)
			assert.Equal(t, tt.want, idx.FindAll(tt.pattern))
		})
	}
}

func TestTree_FindAll_EmptyPattern(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, NewTree("abc").FindAll(""))
	assert.Equal(t, []int{0}, NewTree("").FindAll(""))
}

func TestTree_DistinctSubstrings(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"", 0},
		{"a", 1},
		{"aa", 2},
		{"ab", 3},
		{"aaaa", 4},
		{"abc", 6},
		{"banana", 15},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTree(tt.text).DistinctSubstrings())
		})
	}
}

func TestTree_Unicode(t *testing.T) {
	idx := NewTree("こんにちは世界")

	assert.True(t, idx.Contains("にち"))
	assert.True(t, idx.Contains("世界"))
	assert.False(t, idx.Contains("世に"))

	assert.Equal(t, []int{2}, idx.FindAll("にち"))
	assert.Equal(t, []int{5}, idx.FindAll("世界"))
}

func TestTree_LongRepetitiveText(t *testing.T) {
	text := strings.Repeat("a", 1000) + "b"
	idx := NewTree(text)

	assert.True(t, idx.Contains("aaa"))
	assert.True(t, idx.Contains("ab"))
	assert.False(t, idx.Contains("ba"))

	positions := idx.FindAll("aa")
	assert.Len(t, positions, 999)
}

func TestTree_StructureInvariants(t *testing.T) {
	texts := []string{"", "a", "aa", "banana", "mississippi", "abcabcabc", strings.Repeat("ab", 100)}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			idx := NewTree(text)
			n := idx.TextLen()

			// One leaf per non-empty suffix.
			assert.Equal(t, n, idx.Leaves())

			leafCount := 0
			for i, node := range idx.nodes {
				if i == 0 {
					continue
				}
				if node.suffixStart >= 0 {
					leafCount++
					// Every leaf edge is closed at the full symbol count:
					// no open-end sentinel survives construction.
					assert.Equal(t, len(idx.symbols), node.end, "leaf %d", i)
					assert.Empty(t, node.children, "leaf %d has children", i)
					continue
				}
				// No unary compression nodes remain.
				assert.GreaterOrEqual(t, len(node.children), 2, "internal node %d", i)
				assert.Less(t, node.end, len(idx.symbols), "internal node %d edge is open", i)
			}
			// n text suffixes plus the terminator-only leaf.
			assert.Equal(t, n+1, leafCount)
		})
	}
}

func TestTree_SuffixStartsArePositions(t *testing.T) {
	// Each leaf's stored suffix start must actually begin that suffix.
	text := "mississippi"
	symbols := []rune(text)
	idx := NewTree(text)

	for _, pattern := range []string{"issi", "ssi", "i", "mississippi", "p"} {
		for _, pos := range idx.FindAll(pattern) {
			patLen := len([]rune(pattern))
			require.LessOrEqual(t, pos+patLen, len(symbols))
			assert.Equal(t, pattern, string(symbols[pos:pos+patLen]))
		}
	}
}

func TestTree_NodeCountLinear(t *testing.T) {
	// An explicit suffix tree over n+1 symbols has at most 2(n+1) nodes.
	text := strings.Repeat("abcab", 200)
	idx := NewTree(text)
	assert.LessOrEqual(t, idx.Nodes(), 2*(idx.TextLen()+1))
}
