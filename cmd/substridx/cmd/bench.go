package cmd

import (
	"encoding/json"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/substridx/internal/checker"
	"github.com/Aman-CERP/substridx/internal/config"
	"github.com/Aman-CERP/substridx/internal/ui"
)

func newBenchCmd() *cobra.Command {
	var (
		size       int
		patterns   int
		patternLen int
		alphabet   string
		seed       int64
		withOracle bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark build and query time of both engines",
		Long: `Generate a random text, build both engines over it, run a shared
pattern set through each concurrently and report timings.

Flag defaults come from .substridx.yaml in the working directory (and
SUBSTRIDX_* env vars) when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Discover(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = cfg.Bench.TextSize
			}
			if !cmd.Flags().Changed("patterns") {
				patterns = cfg.Bench.Patterns
			}
			if !cmd.Flags().Changed("pattern-len") {
				patternLen = cfg.Bench.PatternLength
			}
			if !cmd.Flags().Changed("alphabet") {
				alphabet = cfg.Bench.Alphabet
			}

			cacheSize := 0
			if cfg.Cache.Enabled {
				cacheSize = cfg.Cache.Size
			}
			return runBench(cmd, size, patterns, patternLen, alphabet, seed, withOracle, cacheSize, jsonOutput)
		},
	}

	cmd.Flags().IntVar(&size, "size", 10000, "Generated text size in runes")
	cmd.Flags().IntVar(&patterns, "patterns", 200, "Number of patterns to query")
	cmd.Flags().IntVar(&patternLen, "pattern-len", 16, "Maximum pattern length in runes")
	cmd.Flags().StringVar(&alphabet, "alphabet", checker.DefaultAlphabet, "Alphabet for generated text")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&withOracle, "oracle", false, "Also run the brute-force oracle (slow)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runBench(cmd *cobra.Command, size, patterns, patternLen int, alphabet string, seed int64, withOracle bool, cacheSize int, jsonOutput bool) error {
	rng := rand.New(rand.NewSource(seed))
	text := checker.RandomText(rng, size, alphabet)
	patternSet := checker.SamplePatterns(rng, text, alphabet, patterns, patternLen)
	slog.Debug("bench input generated", "size", size, "patterns", len(patternSet), "alphabet", alphabet, "seed", seed)

	report, err := checker.Run(cmd.Context(), text, checker.Options{
		Patterns:   patternSet,
		WithOracle: withOracle,
		CacheSize:  cacheSize,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Header("bench report")
	p.KeyValue("text", "%d runes over %q", report.TextLen, alphabet)
	p.KeyValue("patterns", "%d", report.PatternCount)
	for _, engine := range report.Engines {
		p.KeyValue(engine.Name, "build %s, queries %s", engine.BuildTime, engine.QueryTime)
	}
	if report.Agrees() {
		p.Success("engines agree on all %d patterns", report.PatternCount)
	} else {
		p.Error("engines disagree on %d pattern(s)", len(report.Mismatches))
	}
	return nil
}
