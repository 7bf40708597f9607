// Package cmd provides the CLI commands for substridx.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/substridx/internal/logging"
	"github.com/Aman-CERP/substridx/pkg/version"
)

// Debug logging flag state, shared by the pre/post run hooks.
var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the substridx CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substridx",
		Short: "Substring index toolkit: suffix automaton and suffix tree",
		Long: `substridx builds substring indexes over a fixed text and answers
membership and occurrence queries against them.

Two interchangeable engines are available: a suffix automaton (the minimal
DFA of all substrings) and a suffix tree (Ukkonen's online construction).
Both are built in linear time and agree on every query; verify and bench
exist to prove and measure exactly that.

All positions are rune offsets into the original text.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("substridx version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.substridx/logs/")
	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRun = stopLogging

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func startLogging(cmd *cobra.Command, args []string) error {
	if !debugMode {
		return nil
	}
	cleanup, err := logging.SetupDefault()
	if err != nil {
		return fmt.Errorf("setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	return nil
}

func stopLogging(cmd *cobra.Command, args []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}
