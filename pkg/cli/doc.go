// Package cli provides common utilities for the sdxlgen command-line tool.
//
// This package includes:
//   - Configuration management (contexts)
//   - Output formatting (JSON, YAML, raw)
//   - Request file loading (YAML/JSON)
//   - Styled terminal messages
//
// Configuration is stored in the ~/.sdxlgen/ directory, supporting
// multiple contexts similar to kubectl.
//
// Example usage:
//
//	// Load the configuration
//	cfg, err := cli.LoadConfig()
//
//	// Resolve a context by name, or the current one
//	ctx, err := cfg.ResolveContext("")
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
