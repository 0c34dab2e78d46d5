package domain

import (
	interfaces "supplychain/internal/domain/interfaces"
	types "supplychain/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Label            = types.Label
	NetworkName      = types.NetworkName
	Fingerprint      = types.Fingerprint
	ContractRef      = types.ContractRef
	Artifact         = types.Artifact
	ConnectionStatus = types.ConnectionStatus
	ConnectionState  = types.ConnectionState
	Signer           = types.Signer
	StoredKey        = types.StoredKey
)

// Connection statuses.
const (
	Pending   = types.Pending
	Connected = types.Connected
	Failed    = types.Failed
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ContractDeployer = interfaces.ContractDeployer
	ArtifactSource   = interfaces.ArtifactSource
	Funder           = interfaces.Funder
	WalletProvider   = interfaces.WalletProvider
	KeyStore         = interfaces.KeyStore
	SignerService    = interfaces.SignerService
	FundingService   = interfaces.FundingService
	ConnectorService = interfaces.ConnectorService
)
