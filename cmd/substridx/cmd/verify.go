package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/substridx/internal/checker"
	"github.com/Aman-CERP/substridx/internal/ui"
)

// ErrVerifyFailed is returned when any run produced a disagreement between
// the engines and the oracle.
var ErrVerifyFailed = errors.New("verification failed")

func newVerifyCmd() *cobra.Command {
	var (
		runs       int
		size       int
		patterns   int
		patternLen int
		seed       int64
		unicode    bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check both engines against the brute-force oracle",
		Long: `Run randomized rounds: generate a text, query a sampled pattern set on
the automaton, the tree and the brute-force reference, and fail on any
disagreement. Texts are kept small so the oracle stays feasible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, runs, size, patterns, patternLen, seed, unicode)
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 20, "Number of randomized rounds")
	cmd.Flags().IntVar(&size, "size", 300, "Text size per round in runes")
	cmd.Flags().IntVar(&patterns, "patterns", 100, "Patterns per round")
	cmd.Flags().IntVar(&patternLen, "pattern-len", 12, "Maximum pattern length in runes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&unicode, "unicode", false, "Use a multi-byte alphabet")

	return cmd
}

func runVerify(cmd *cobra.Command, runs, size, patterns, patternLen int, seed int64, unicode bool) error {
	rng := rand.New(rand.NewSource(seed))
	alphabet := checker.DefaultAlphabet
	if unicode {
		alphabet = checker.UnicodeAlphabet
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	failures := 0

	for run := 0; run < runs; run++ {
		text := checker.RandomText(rng, size, alphabet)
		patternSet := checker.SamplePatterns(rng, text, alphabet, patterns, patternLen)
		patternSet = append(patternSet, "") // empty pattern is a contract case, always include it

		report, err := checker.Run(cmd.Context(), text, checker.Options{
			Patterns:   patternSet,
			WithOracle: true,
		})
		if err != nil {
			return err
		}

		if report.Agrees() {
			slog.Debug("verify round passed", "run", run, "patterns", len(patternSet))
			continue
		}

		failures++
		p.Error("round %d: %d mismatch(es)", run, len(report.Mismatches))
		for _, m := range report.Mismatches {
			p.Plain("  pattern %q: automaton=%v tree=%v oracle=%v", m.Pattern, m.Automaton, m.Tree, m.Oracle)
		}
		if report.DistinctAutomaton != report.DistinctTree {
			p.Error("round %d: distinct substrings disagree: automaton=%d tree=%d",
				run, report.DistinctAutomaton, report.DistinctTree)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d rounds disagreed", ErrVerifyFailed, failures, runs)
	}
	p.Success("all %d rounds agree (alphabet %q)", runs, alphabet)
	return nil
}
