// Package main provides the CLI entrypoint for literal-generator.
//
// literal-generator writes Go values as C#-style object initializer
// literals:
//   - Decodes JSON documents into known Go types and writes them
//   - Prints the literal name of a Go type
//   - Generates descriptor registrations for generic Go types
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"literal-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
