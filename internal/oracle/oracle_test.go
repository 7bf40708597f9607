package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReference_FindAll(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"two occurrences", "banana", "ana", []int{1, 3}},
		{"overlapping", "aaaa", "aa", []int{0, 1, 2}},
		{"absent", "banana", "xyz", []int{}},
		{"unicode", "こんにちは世界", "にち", []int{2}},
		{"empty text", "", "a", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.text).FindAll(tt.pattern))
		})
	}
}

func TestReference_EmptyPattern(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, New("ab").FindAll(""))
	assert.Equal(t, []int{0}, New("").FindAll(""))
	assert.True(t, New("").Contains(""))
}

func TestReference_Contains(t *testing.T) {
	ref := New("banana")
	assert.True(t, ref.Contains("nan"))
	assert.False(t, ref.Contains("nana2"))
}

func TestReference_DistinctSubstrings(t *testing.T) {
	assert.Equal(t, int64(0), New("").DistinctSubstrings())
	assert.Equal(t, int64(15), New("banana").DistinctSubstrings())
	assert.Equal(t, int64(4), New("aaaa").DistinctSubstrings())
}
