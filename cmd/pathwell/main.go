// Package main provides the entry point for the pathwell CLI.
package main

import (
	"os"

	"github.com/pathwell/ignore/cmd/pathwell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
