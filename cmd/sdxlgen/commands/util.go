package commands

import (
	"os"

	"github.com/bitfold/sdxlgen/pkg/cli"
	"github.com/bitfold/sdxlgen/pkg/imagegen"
	"github.com/bitfold/sdxlgen/pkg/stability"
)

// loadRequest loads a request from a YAML or JSON file, or from stdin
// when path is "-"
func loadRequest(path string, v any) error {
	if path == "-" {
		return cli.LoadRequestFromStdin(v)
	}
	return cli.LoadRequest(path, v)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printWarning prints a warning message
func printWarning(format string, args ...any) {
	cli.PrintWarning(format, args...)
}

// printInfo prints an info message
func printInfo(format string, args ...any) {
	cli.PrintInfo(format, args...)
}

// resolveCredentials returns the context selected by the -c flag or the
// current context, falling back to STABILITY_KEY/STABILITY_HOST from the
// environment when no context is configured.
func resolveCredentials() (*cli.Context, error) {
	cfg := getConfig()
	if cfg != nil {
		ctx, err := cfg.ResolveContext(contextName)
		if err == nil {
			return ctx, nil
		}
		if contextName != "" {
			// An explicitly named context must exist.
			return nil, err
		}
	}

	if key := os.Getenv("STABILITY_KEY"); key != "" {
		return &cli.Context{
			Name:   "environment",
			APIKey: key,
			Host:   os.Getenv("STABILITY_HOST"),
		}, nil
	}

	return nil, &imagegen.Error{
		Kind:    imagegen.KindMissingCredential,
		Message: "no API key: set the STABILITY_KEY environment variable or configure a context with 'sdxlgen config add-context'",
	}
}

// createClient creates a Stability API client from context configuration
func createClient(ctx *cli.Context) (*stability.Client, error) {
	var opts []stability.Option

	if ctx.Host != "" {
		opts = append(opts, stability.WithHost(ctx.Host))
	}
	if ctx.Engine != "" {
		opts = append(opts, stability.WithEngine(ctx.Engine))
	}

	return stability.NewClient(ctx.APIKey, opts...)
}
