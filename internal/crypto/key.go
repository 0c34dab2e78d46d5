package crypto

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidAddress is returned for strings that are not 20-byte hex addresses.
var ErrInvalidAddress = errors.New("invalid address")

// ParsePrivateKey decodes a secp256k1 private key from hex. The 0x prefix is optional.
func ParsePrivateKey(v string) (*ecdsa.PrivateKey, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "0x")
	key, err := ethcrypto.HexToECDSA(v)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// GenerateKey creates a fresh secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// AddressOf derives the account address controlled by key.
func AddressOf(key *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}

// KeyBytes returns the 32-byte big-endian scalar of key. Callers should Wipe it.
func KeyBytes(key *ecdsa.PrivateKey) []byte {
	return ethcrypto.FromECDSA(key)
}

// KeyFromBytes is the inverse of KeyBytes.
func KeyFromBytes(b []byte) (*ecdsa.PrivateKey, error) {
	return ethcrypto.ToECDSA(b)
}

// ParseAddress validates and decodes a hex account address.
func ParseAddress(v string) (common.Address, error) {
	v = strings.TrimSpace(v)
	if !common.IsHexAddress(v) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, v)
	}
	return common.HexToAddress(v), nil
}
