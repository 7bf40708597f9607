// Package checker cross-checks the two index representations against each
// other (and optionally against the brute-force oracle) and measures build
// and query times. It backs the bench and verify CLI commands and the
// randomized agreement tests.
package checker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Aman-CERP/substridx/internal/oracle"
	"github.com/Aman-CERP/substridx/pkg/substring"
)

// Engine names reported by Run.
const (
	EngineAutomaton = "automaton"
	EngineTree      = "tree"
	EngineOracle    = "oracle"
)

// Options configures a checker run.
type Options struct {
	// Patterns to query on every engine.
	Patterns []string
	// WithOracle includes the brute-force reference as ground truth. Only
	// sensible for small texts.
	WithOracle bool
	// CacheSize wraps each engine in a query cache of that size when > 0.
	CacheSize int
}

// EngineReport holds per-engine timings.
type EngineReport struct {
	Name      string        `json:"name"`
	BuildTime time.Duration `json:"build_time"`
	QueryTime time.Duration `json:"query_time"`
}

// Mismatch records a pattern on which the engines disagreed. Oracle is nil
// when the oracle was not part of the run.
type Mismatch struct {
	Pattern   string `json:"pattern"`
	Automaton []int  `json:"automaton"`
	Tree      []int  `json:"tree"`
	Oracle    []int  `json:"oracle,omitempty"`
}

// Report is the outcome of one checker run.
type Report struct {
	TextLen           int            `json:"text_len"`
	PatternCount      int            `json:"pattern_count"`
	Engines           []EngineReport `json:"engines"`
	Mismatches        []Mismatch     `json:"mismatches"`
	DistinctAutomaton int64          `json:"distinct_automaton"`
	DistinctTree      int64          `json:"distinct_tree"`
}

// Agrees reports whether all engines agreed on every pattern and on the
// distinct-substring count.
func (r *Report) Agrees() bool {
	return len(r.Mismatches) == 0 && r.DistinctAutomaton == r.DistinctTree
}

// Run builds every engine over text, fans the pattern set out to each
// engine concurrently, and compares the results position by position.
// Construction itself is sequential per engine; only the read-only query
// passes run in parallel, which doubles as a check that concurrent queries
// on a finished index are safe.
func Run(ctx context.Context, text string, opts Options) (*Report, error) {
	report := &Report{PatternCount: len(opts.Patterns)}

	engines := make([]substring.Index, 0, 3)
	names := make([]string, 0, 3)

	start := time.Now()
	automaton := substring.NewAutomaton(text)
	report.Engines = append(report.Engines, EngineReport{Name: EngineAutomaton, BuildTime: time.Since(start)})
	engines = append(engines, wrap(automaton, opts.CacheSize))
	names = append(names, EngineAutomaton)
	report.TextLen = automaton.TextLen()

	start = time.Now()
	tree := substring.NewTree(text)
	report.Engines = append(report.Engines, EngineReport{Name: EngineTree, BuildTime: time.Since(start)})
	engines = append(engines, wrap(tree, opts.CacheSize))
	names = append(names, EngineTree)

	if opts.WithOracle {
		start = time.Now()
		ref := oracle.New(text)
		report.Engines = append(report.Engines, EngineReport{Name: EngineOracle, BuildTime: time.Since(start)})
		engines = append(engines, ref)
		names = append(names, EngineOracle)
	}

	results := make([][][]int, len(engines))
	queryTimes := make([]time.Duration, len(engines))

	g, gctx := errgroup.WithContext(ctx)
	for i, engine := range engines {
		i, engine := i, engine
		g.Go(func() error {
			out := make([][]int, len(opts.Patterns))
			begin := time.Now()
			for j, pattern := range opts.Patterns {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[j] = engine.FindAll(pattern)
			}
			queryTimes[i] = time.Since(begin)
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range report.Engines {
		report.Engines[i].QueryTime = queryTimes[i]
	}

	for j, pattern := range opts.Patterns {
		if agree(results, j) {
			continue
		}
		m := Mismatch{
			Pattern:   pattern,
			Automaton: results[0][j],
			Tree:      results[1][j],
		}
		if opts.WithOracle {
			m.Oracle = results[2][j]
		}
		report.Mismatches = append(report.Mismatches, m)
	}

	report.DistinctAutomaton = automaton.DistinctSubstrings()
	report.DistinctTree = tree.DistinctSubstrings()
	return report, nil
}

func wrap(idx substring.Index, cacheSize int) substring.Index {
	if cacheSize > 0 {
		return substring.NewCached(idx, cacheSize)
	}
	return idx
}

func agree(results [][][]int, pattern int) bool {
	want := results[0][pattern]
	for _, engine := range results[1:] {
		got := engine[pattern]
		if len(got) != len(want) {
			return false
		}
		for k := range want {
			if got[k] != want[k] {
				return false
			}
		}
	}
	return true
}
