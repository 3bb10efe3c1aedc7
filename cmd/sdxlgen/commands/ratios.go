package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bitfold/sdxlgen/pkg/imagegen"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "List the supported aspect ratios",
	Long: `List the supported aspect ratio keys and their SDXL output dimensions.

Pass a key to 'sdxlgen generate --ratio'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tWIDTH\tHEIGHT")

		for _, key := range imagegen.RatioKeys() {
			ratio, _ := imagegen.LookupRatio(key)
			name := key
			if key == imagegen.DefaultRatioKey {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\n", name, ratio.Width, ratio.Height)
		}

		return w.Flush()
	},
}
