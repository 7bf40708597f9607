// Package oracle provides a brute-force reference implementation of the
// substring.Index contract. It is deliberately naive: a rune-wise scan for
// occurrences and a set-based distinct-substring count. Tests and the
// verify command use it as ground truth for the real indexes; it is far too
// slow for anything else.
package oracle

import (
	"github.com/Aman-CERP/substridx/pkg/substring"
)

// Reference answers substring queries by scanning the text directly.
type Reference struct {
	symbols []rune
}

var _ substring.Index = (*Reference)(nil)

// New builds a reference matcher over text. Like the real indexes it is
// infallible and rune-addressed.
func New(text string) *Reference {
	return &Reference{symbols: []rune(text)}
}

// Contains reports whether pattern occurs in the text.
func (r *Reference) Contains(pattern string) bool {
	return len(r.FindAll(pattern)) > 0
}

// FindAll scans every candidate position and returns the starts where the
// pattern matches rune for rune, in ascending order.
func (r *Reference) FindAll(pattern string) []int {
	p := []rune(pattern)
	if len(p) == 0 {
		positions := make([]int, len(r.symbols)+1)
		for i := range positions {
			positions[i] = i
		}
		return positions
	}

	positions := []int{}
	for i := 0; i+len(p) <= len(r.symbols); i++ {
		if r.matchAt(i, p) {
			positions = append(positions, i)
		}
	}
	return positions
}

func (r *Reference) matchAt(start int, p []rune) bool {
	for j, ch := range p {
		if r.symbols[start+j] != ch {
			return false
		}
	}
	return true
}

// DistinctSubstrings enumerates every substring into a set. Quadratic in
// the number of substrings; usable for texts up to a few thousand runes.
func (r *Reference) DistinctSubstrings() int64 {
	seen := make(map[string]struct{})
	for i := 0; i < len(r.symbols); i++ {
		for j := i + 1; j <= len(r.symbols); j++ {
			seen[string(r.symbols[i:j])] = struct{}{}
		}
	}
	return int64(len(seen))
}

// TextLen returns the length of the text in runes.
func (r *Reference) TextLen() int {
	return len(r.symbols)
}
