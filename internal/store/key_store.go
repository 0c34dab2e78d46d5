package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"supplychain/internal/domain"
)

const keyFilename = "deployer.key.enc"

// ErrNoKey is returned by LoadKey when no key has been saved yet.
var ErrNoKey = errors.New("no deployer key in key store")

// KeyFileStore persists the deployer key to disk, sealed under a passphrase.
type KeyFileStore struct {
	dir string
	kdf scryptSettings
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, kdf: scryptParamsDefault()}
}

// Path returns the location of the sealed key file.
func (s *KeyFileStore) Path() string { return filepath.Join(s.dir, keyFilename) }

// SaveKey seals key with passphrase and replaces any existing key file.
func (s *KeyFileStore) SaveKey(passphrase string, key domain.StoredKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(key)
	if err != nil {
		return err
	}
	ct, err := seal(passphrase, key.Address.Hex(), raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadKey reads and unseals the deployer key.
func (s *KeyFileStore) LoadKey(passphrase string) (domain.StoredKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return domain.StoredKey{}, err
	}
	if b == nil {
		return domain.StoredKey{}, ErrNoKey
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return domain.StoredKey{}, err
	}
	var key domain.StoredKey
	if err := json.Unmarshal(pt, &key); err != nil {
		return domain.StoredKey{}, fmt.Errorf("decode stored key: %w", err)
	}
	return key, nil
}

// HasKey reports whether a sealed key file exists.
func (s *KeyFileStore) HasKey() (bool, error) {
	_, err := os.Stat(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
