package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	domaintypes "supplychain/internal/domain/types"
)

// SignerService creates, imports and unlocks the deployer key.
type SignerService interface {
	GenerateSigner(passphrase string) (domaintypes.Signer, domaintypes.Fingerprint, error)
	ImportSigner(passphrase, hexKey string) (domaintypes.Signer, domaintypes.Fingerprint, error)
	LoadSigner(passphrase string) (domaintypes.Signer, error)
}

// FundingService sends a fixed amount of ether to an account.
type FundingService interface {
	Fund(ctx context.Context, to string, amountEther string) (common.Hash, error)
}

// ConnectorService performs one wallet connection attempt.
type ConnectorService interface {
	Connect(ctx context.Context) domaintypes.ConnectionState
}
