package types

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Signer is an account able to authorise transactions on a network.
type Signer struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// StoredKey is the plaintext form of the deployer key before it is sealed on disk.
type StoredKey struct {
	Address common.Address `json:"address"`
	Private []byte         `json:"private"`
	Created int64          `json:"created_utc"`
}
