// Package main provides the CLI entry point for dagbridge.
package main

import (
	"os"

	"github.com/leapstack-labs/dagbridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
