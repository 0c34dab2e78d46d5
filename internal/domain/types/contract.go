package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractRef is the record of one confirmed contract deployment.
type ContractRef struct {
	Label   Label          `json:"label"`
	Address common.Address `json:"address"`
	TxHash  common.Hash    `json:"tx_hash"`
}

// String renders the reference the way deployment reports print it.
func (r ContractRef) String() string {
	return fmt.Sprintf("%s deployed to: %s", r.Label, r.Address.Hex())
}

// Artifact is a compiled contract: its ABI and creation bytecode.
type Artifact struct {
	Name     string
	ABI      abi.ABI
	Bytecode []byte
}
