package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the provider's generation engines",
	Long: `List the generation engines available to the configured account.

Examples:
  sdxlgen engines
  sdxlgen engines --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cliCtx, err := resolveCredentials()
		if err != nil {
			return err
		}

		client, err := createClient(cliCtx)
		if err != nil {
			return err
		}

		engines, err := client.Engines.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list engines: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(engines, getOutputFile(), isJSONOutput())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tDESCRIPTION")
		for _, engine := range engines {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", engine.ID, engine.Name, engine.Type, engine.Description)
		}
		return w.Flush()
	},
}
