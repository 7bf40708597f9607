package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/substridx/internal/ui"
	"github.com/Aman-CERP/substridx/pkg/substring"
)

// QueryOutput is the JSON output format for the query command.
type QueryOutput struct {
	Engine      string `json:"engine"`
	Pattern     string `json:"pattern"`
	Contains    bool   `json:"contains"`
	Positions   []int  `json:"positions"`
	Occurrences int    `json:"occurrences"`
	BuildTimeMS int64  `json:"build_time_ms"`
}

func newQueryCmd() *cobra.Command {
	var (
		textArg    string
		filePath   string
		engine     string
		jsonOutput bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "query PATTERN",
		Short: "Query a pattern against an indexed text",
		Long: `Build a substring index over the given text and report whether the
pattern occurs and at which rune offsets.

Positions are rune offsets, ascending, with overlapping occurrences all
reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			textSet := cmd.Flags().Changed("text")
			return runQuery(cmd, args[0], textSet, textArg, filePath, engine, jsonOutput, noCache)
		},
	}

	cmd.Flags().StringVar(&textArg, "text", "", "Text to index")
	cmd.Flags().StringVar(&filePath, "file", "", "File containing the text to index")
	cmd.Flags().StringVar(&engine, "engine", engineAutomaton, "Index engine: automaton or tree")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable query-result caching")

	return cmd
}

func runQuery(cmd *cobra.Command, pattern string, textSet bool, textArg, filePath, engine string, jsonOutput, noCache bool) error {
	text, err := loadText(textSet, textArg, filePath)
	if err != nil {
		return err
	}

	start := time.Now()
	idx, err := buildIndex(engine, text)
	if err != nil {
		return err
	}
	buildTime := time.Since(start)
	slog.Debug("index built", "engine", engine, "text_runes", len([]rune(text)), "duration", buildTime)

	if !noCache {
		idx = substring.NewCached(idx, substring.DefaultCacheSize)
	}

	positions := idx.FindAll(pattern)
	contains := idx.Contains(pattern)

	if jsonOutput {
		out := QueryOutput{
			Engine:      engine,
			Pattern:     pattern,
			Contains:    contains,
			Positions:   positions,
			Occurrences: len(positions),
			BuildTimeMS: buildTime.Milliseconds(),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Header(fmt.Sprintf("query %q (%s)", pattern, engine))
	if contains {
		p.Success("found %d occurrence(s)", len(positions))
	} else {
		p.Warning("not found")
	}
	p.KeyValue("positions", "%v", positions)
	p.KeyValue("build", "%s", buildTime)
	return nil
}
