package checker

import (
	"math/rand"
	"strings"
)

// DefaultAlphabet is the alphabet used by bench and verify when none is
// configured. Small on purpose: repeated substrings stress the clone and
// split paths of both builders far harder than near-unique text does.
const DefaultAlphabet = "abcd"

// UnicodeAlphabet mixes 1-, 2-, 3- and 4-byte encodings so that randomized
// runs exercise rune-offset arithmetic rather than byte offsets.
const UnicodeAlphabet = "abéß世界\U0001f600"

// RandomText generates n runes drawn uniformly from alphabet.
func RandomText(rng *rand.Rand, n int, alphabet string) string {
	runes := []rune(alphabet)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(runes[rng.Intn(len(runes))])
	}
	return b.String()
}

// SamplePatterns draws count patterns of up to maxLen runes: mostly real
// substrings of text, mixed with random strings over the same alphabet so
// both the hit and miss paths are covered. The empty text yields only
// random patterns.
func SamplePatterns(rng *rand.Rand, text, alphabet string, count, maxLen int) []string {
	symbols := []rune(text)
	patterns := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if len(symbols) > 0 && rng.Intn(4) != 0 {
			start := rng.Intn(len(symbols))
			length := 1 + rng.Intn(maxLen)
			if start+length > len(symbols) {
				length = len(symbols) - start
			}
			patterns = append(patterns, string(symbols[start:start+length]))
			continue
		}
		patterns = append(patterns, RandomText(rng, 1+rng.Intn(maxLen), alphabet))
	}
	return patterns
}
