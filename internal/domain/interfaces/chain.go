package interfaces

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	domaintypes "supplychain/internal/domain/types"
)

// ContractDeployer submits one contract creation and waits until it is mined.
type ContractDeployer interface {
	Deploy(
		ctx context.Context,
		artifact domaintypes.Artifact,
		args ...any,
	) (common.Address, common.Hash, error)
}

// ArtifactSource resolves compiled contracts by name.
type ArtifactSource interface {
	LoadArtifact(name string) (domaintypes.Artifact, error)
}

// Funder moves native currency from the active signer.
type Funder interface {
	Transfer(ctx context.Context, to common.Address, wei *big.Int) (common.Hash, error)
}
