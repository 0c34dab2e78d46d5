package interfaces

import "context"

// WalletProvider is the capability a wallet extension exposes to an application.
// Addresses are returned exactly as the provider reports them.
type WalletProvider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	SignerAddress(ctx context.Context) (string, error)
}
