package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fundCmd sends ether from the deployer, e.g. to a browser wallet on Ganache.
func fundCmd() *cobra.Command {
	var amount string
	cmd := &cobra.Command{
		Use:   "fund [address]",
		Short: "Send ether from the deployer to an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := appCtx.Config.Fund.To
			if len(args) == 1 {
				to = args[0]
			}
			if to == "" {
				return fmt.Errorf("recipient required: pass an address or set fund.to in the config")
			}
			if amount == "" {
				amount = appCtx.Config.Fund.Amount
			}

			ctx, cancel, err := withTimeout(cmd.Context(), appCtx.Config)
			if err != nil {
				return err
			}
			defer cancel()

			client, _, err := appCtx.DialChain(ctx, network, askPassphrase())
			if err != nil {
				return err
			}
			defer client.Close()

			hash, err := appCtx.Funding(client).Fund(ctx, to, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction hash: %s\n", hash.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount in ether (default from config, 1.0)")
	return cmd
}
