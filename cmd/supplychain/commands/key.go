package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"supplychain/internal/crypto"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the deployer key store",
	}
	cmd.AddCommand(keyGenerateCmd(), keyImportCmd(), keyAddressCmd())
	return cmd
}

func keyGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a deployer key and store it encrypted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := newPassphrase()
			if err != nil {
				return err
			}
			signer, fp, err := appCtx.Signers.GenerateSigner(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key created.\nAddress: %s\nFingerprint: %s\n", signer.Address.Hex(), fp)
			return nil
		},
	}
}

// keyImportCmd stores an existing key, such as one listed by Ganache.
func keyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <hex-private-key>",
		Short: "Store an existing private key encrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := newPassphrase()
			if err != nil {
				return err
			}
			signer, fp, err := appCtx.Signers.ImportSigner(pass, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key imported.\nAddress: %s\nFingerprint: %s\n", signer.Address.Hex(), fp)
			return nil
		},
	}
}

func keyAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the stored deployer address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := askPassphrase()()
			if err != nil {
				return err
			}
			signer, err := appCtx.Signers.LoadSigner(pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\nFingerprint: %s\n", signer.Address.Hex(), crypto.Fingerprint(signer.Address))
			return nil
		},
	}
}
