// Package main provides the sqltidy SQL script reformatter.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlscript/internal/cli"
)

func main() {
	if err := cli.ExecuteTidy(); err != nil {
		os.Exit(1)
	}
}
