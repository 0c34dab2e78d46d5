// Package signer manages creation, import and unlocking of the deployer key.
//
// It enforces passphrase policy, generates or parses secp256k1 keys, and
// persists them via the domain.KeyStore. Resolve picks the signer used by a
// network: a raw account key from configuration wins over the key store.
package signer
