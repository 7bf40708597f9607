package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.substridx/logs/).
// Falls back to the temp directory if the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".substridx", "logs")
	}
	return filepath.Join(home, ".substridx", "logs")
}

// DefaultLogPath returns the default CLI log path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "substridx.log")
}
