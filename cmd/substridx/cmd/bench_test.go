package cmd

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/substridx/internal/checker"
)

// chdir changes into dir for the duration of the test, like testing.T.Chdir
// (which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestBenchCmd_JSONReport(t *testing.T) {
	// Run in a temp dir so a developer's .substridx.yaml cannot leak in.
	chdir(t, t.TempDir())

	out, err := executeCommand(t, "bench", "--size", "300", "--patterns", "30", "--json")
	require.NoError(t, err)

	var report checker.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 300, report.TextLen)
	assert.Equal(t, 30, report.PatternCount)
	assert.Empty(t, report.Mismatches)
	assert.Len(t, report.Engines, 2)
}

func TestBenchCmd_WithOracle(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := executeCommand(t, "bench", "--size", "100", "--patterns", "20", "--oracle", "--json")
	require.NoError(t, err)

	var report checker.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Engines, 3)
	assert.Empty(t, report.Mismatches)
}
