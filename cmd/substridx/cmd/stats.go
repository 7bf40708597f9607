package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/substridx/internal/ui"
	"github.com/Aman-CERP/substridx/pkg/substring"
)

// StatsOutput is the JSON output format for the stats command.
type StatsOutput struct {
	TextRunes          int   `json:"text_runes"`
	AutomatonStates    int   `json:"automaton_states"`
	AutomatonBuildMS   int64 `json:"automaton_build_ms"`
	TreeNodes          int   `json:"tree_nodes"`
	TreeLeaves         int   `json:"tree_leaves"`
	TreeBuildMS        int64 `json:"tree_build_ms"`
	DistinctSubstrings int64 `json:"distinct_substrings"`
}

func newStatsCmd() *cobra.Command {
	var (
		textArg    string
		filePath   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show structure statistics for both engines",
		Long: `Build both index representations over the given text and report their
sizes, build times and the distinct-substring count.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			textSet := cmd.Flags().Changed("text")
			return runStats(cmd, textSet, textArg, filePath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&textArg, "text", "", "Text to index")
	cmd.Flags().StringVar(&filePath, "file", "", "File containing the text to index")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, textSet bool, textArg, filePath string, jsonOutput bool) error {
	text, err := loadText(textSet, textArg, filePath)
	if err != nil {
		return err
	}

	start := time.Now()
	automaton := substring.NewAutomaton(text)
	automatonBuild := time.Since(start)

	start = time.Now()
	tree := substring.NewTree(text)
	treeBuild := time.Since(start)

	out := StatsOutput{
		TextRunes:          automaton.TextLen(),
		AutomatonStates:    automaton.States(),
		AutomatonBuildMS:   automatonBuild.Milliseconds(),
		TreeNodes:          tree.Nodes(),
		TreeLeaves:         tree.Leaves(),
		TreeBuildMS:        treeBuild.Milliseconds(),
		DistinctSubstrings: automaton.DistinctSubstrings(),
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Header("index statistics")
	p.KeyValue("text", "%d runes", out.TextRunes)
	p.KeyValue("automaton states", "%d (built in %s)", out.AutomatonStates, automatonBuild)
	p.KeyValue("tree nodes", "%d, %d leaves (built in %s)", out.TreeNodes, out.TreeLeaves, treeBuild)
	p.KeyValue("distinct substrings", "%d", out.DistinctSubstrings)
	return nil
}
