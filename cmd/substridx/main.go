// Package main provides the entry point for the substridx CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/substridx/cmd/substridx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
