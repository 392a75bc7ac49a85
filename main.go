// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Masterkey.
//
// Usage:
//
//	go run . [flags]
//	./masterkey [flags]
//
// This launches the Masterkey CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/masterkey/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
