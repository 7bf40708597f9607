package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Aman-CERP/substridx/pkg/substring"
)

// Engine selector values accepted by --engine.
const (
	engineAutomaton = "automaton"
	engineTree      = "tree"
)

// ErrNoText is returned when neither --text nor --file is provided.
var ErrNoText = errors.New("no text given: use --text or --file")

// ErrTextConflict is returned when both --text and --file are provided.
var ErrTextConflict = errors.New("--text and --file are mutually exclusive")

// ErrUnknownEngine is returned for an unrecognized --engine value.
var ErrUnknownEngine = errors.New("unknown engine (want automaton or tree)")

// loadText resolves the text to index from the --text/--file flag pair.
// textSet distinguishes an explicitly empty --text (a legal, degenerate
// index) from an absent flag.
func loadText(textSet bool, textArg, filePath string) (string, error) {
	switch {
	case textSet && filePath != "":
		return "", ErrTextConflict
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	case textSet:
		return textArg, nil
	default:
		return "", ErrNoText
	}
}

// buildIndex constructs the selected engine over text.
func buildIndex(engine, text string) (substring.Index, error) {
	switch engine {
	case engineAutomaton:
		return substring.NewAutomaton(text), nil
	case engineTree:
		return substring.NewTree(text), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
