package checker

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EnginesAgreeWithOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 10; round++ {
		text := RandomText(rng, 200, DefaultAlphabet)
		patterns := SamplePatterns(rng, text, DefaultAlphabet, 50, 10)
		patterns = append(patterns, "")

		report, err := Run(context.Background(), text, Options{
			Patterns:   patterns,
			WithOracle: true,
		})
		require.NoError(t, err)

		assert.True(t, report.Agrees(), "round %d mismatches: %+v", round, report.Mismatches)
		assert.Equal(t, 200, report.TextLen)
		assert.Len(t, report.Engines, 3)
	}
}

func TestRun_UnicodeAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	text := RandomText(rng, 120, UnicodeAlphabet)
	patterns := SamplePatterns(rng, text, UnicodeAlphabet, 40, 6)

	report, err := Run(context.Background(), text, Options{
		Patterns:   patterns,
		WithOracle: true,
	})
	require.NoError(t, err)
	assert.True(t, report.Agrees(), "mismatches: %+v", report.Mismatches)
	assert.Equal(t, 120, report.TextLen)
}

func TestRun_WithCache(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	text := RandomText(rng, 100, DefaultAlphabet)
	patterns := SamplePatterns(rng, text, DefaultAlphabet, 30, 8)
	// Repeat the pattern set so the cache actually serves hits.
	patterns = append(patterns, patterns...)

	report, err := Run(context.Background(), text, Options{
		Patterns:   patterns,
		WithOracle: true,
		CacheSize:  64,
	})
	require.NoError(t, err)
	assert.True(t, report.Agrees(), "mismatches: %+v", report.Mismatches)
}

func TestRun_EmptyText(t *testing.T) {
	report, err := Run(context.Background(), "", Options{
		Patterns:   []string{"", "a"},
		WithOracle: true,
	})
	require.NoError(t, err)
	assert.True(t, report.Agrees())
	assert.Equal(t, 0, report.TextLen)
	assert.Equal(t, int64(0), report.DistinctAutomaton)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, "banana", Options{Patterns: []string{"ana"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomText_LengthAndAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	text := RandomText(rng, 500, "ab")

	runes := []rune(text)
	require.Len(t, runes, 500)
	for _, r := range runes {
		assert.Contains(t, []rune("ab"), r)
	}
}

func TestSamplePatterns_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	patterns := SamplePatterns(rng, "abcdabcd", DefaultAlphabet, 50, 5)

	require.Len(t, patterns, 50)
	for _, p := range patterns {
		n := len([]rune(p))
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestSamplePatterns_EmptyText(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	patterns := SamplePatterns(rng, "", DefaultAlphabet, 10, 4)
	require.Len(t, patterns, 10)
	for _, p := range patterns {
		assert.NotEmpty(t, p)
	}
}
