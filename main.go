// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Fortress.
//
// Usage:
//
//	go run . [flags]
//	./fortress [flags]
//
// This launches the Fortress CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/fortresspw/fortress/ui/cli"
)

// main is the entrypoint for the Fortress CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("Fortress CLI error: %v", err)
		os.Exit(1)
	}
}
