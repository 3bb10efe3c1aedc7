// Package main provides the sdxlgen CLI tool.
//
// Usage:
//
//	sdxlgen [flags] <command> [args]
//
// Commands:
//
//	generate - Generate an image from a text prompt
//	ratios   - List the supported aspect ratios
//	engines  - List the provider's generation engines
//	balance  - Show the account credit balance
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.sdxlgen/
//	Use 'sdxlgen config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/bitfold/sdxlgen/cmd/sdxlgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
