package commands

import (
	"github.com/spf13/cobra"

	"supplychain/internal/services/connector"
)

// connectCmd runs one wallet connection attempt. Failures are shown, not returned.
func connectCmd() *cobra.Command {
	var providerURL string
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to a wallet provider and show the active address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn := appCtx.Connector(cmd.Context(), providerURL, connector.NewTextRenderer(cmd.OutOrStdout()))
			defer closeFn()

			svc.Connect(cmd.Context())
			return nil
		},
	}
	cmd.Flags().StringVar(&providerURL, "provider", "", "wallet JSON-RPC endpoint (default wallet.provider_url)")
	return cmd
}
