package interfaces

import domaintypes "supplychain/internal/domain/types"

// KeyStore persists the deployer key sealed under a passphrase.
type KeyStore interface {
	SaveKey(passphrase string, key domaintypes.StoredKey) error
	LoadKey(passphrase string) (domaintypes.StoredKey, error)
	HasKey() (bool, error)
}
