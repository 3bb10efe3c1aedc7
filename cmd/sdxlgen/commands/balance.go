package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the account credit balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		cliCtx, err := resolveCredentials()
		if err != nil {
			return err
		}

		client, err := createClient(cliCtx)
		if err != nil {
			return err
		}

		balance, err := client.User.Balance(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch balance: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(balance, getOutputFile(), isJSONOutput())
		}

		printInfo("Credits: %.2f", balance.Credits)
		return nil
	},
}
