// Package main provides the touriq command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/touriq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
