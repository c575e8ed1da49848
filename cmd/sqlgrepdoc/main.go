// Package main provides the sqlgrepdoc documentation statement extractor.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlscript/internal/cli"
)

func main() {
	if err := cli.ExecuteGrepDoc(); err != nil {
		os.Exit(1)
	}
}
