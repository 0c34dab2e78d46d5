package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// The current supported version of the sealed key format stored on disk.
	keystoreFormatVersion = 1
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// sealed key has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
)

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V       int            `json:"v"`
	Address string         `json:"address"`
	Salt    []byte         `json:"salt"`
	KDF     scryptSettings `json:"kdf"`
	Cipher  []byte         `json:"cipher"`
}

type scryptSettings struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// seal derives a key from passphrase and encrypts raw. The address is kept in
// clear text as associated data so the file can be identified without unlocking.
func seal(passphrase, address string, raw []byte, kdf scryptSettings) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key is single use
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt[:], address))

	return json.Marshal(sealed{
		V:       keystoreFormatVersion,
		Address: address,
		Salt:    salt[:],
		KDF:     kdf,
		Cipher:  ct,
	})
}

// open decrypts a sealed blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	if s.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported key file version %d", s.V)
	}

	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.KDF.N, s.KDF.R, s.KDF.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], s.Cipher, additionalData(s.Salt, s.Address))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func additionalData(salt []byte, address string) []byte {
	ad := make([]byte, 0, len(salt)+len(address))
	ad = append(ad, salt...)
	return append(ad, address...)
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() scryptSettings { return scryptSettings{N: 1 << 15, R: 8, P: 1} }
