package commands

import (
	"github.com/spf13/cobra"
)

// deployCmd deploys the configured plan: by default UsersContract,
// ProductsContract, then SupplyChain linked to both.
func deployCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the configured contracts and print their addresses",
		Long: `Deploy the configured contracts in order and print each address.

Deployment stops at the first failure. The error names the failed step,
"deploy <Label> (step N): ", followed by the node or artifact error as returned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := appCtx.Plan()
			if err != nil {
				return err
			}
			ctx, cancel, err := withTimeout(cmd.Context(), appCtx.Config)
			if err != nil {
				return err
			}
			defer cancel()

			client, net, err := appCtx.DialChain(ctx, network, askPassphrase())
			if err != nil {
				return err
			}
			defer client.Close()

			report, err := appCtx.Deployer(client, net).Run(ctx, plan)
			if err != nil {
				return err
			}
			if asJSON {
				return report.PrintJSON(cmd.OutOrStdout())
			}
			return report.Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
