package signer

import (
	"errors"
	"fmt"
	"time"
	"unicode"

	"go.uber.org/zap"

	"supplychain/internal/crypto"
	"supplychain/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrNoSigner is returned when neither configuration nor the key store supply a key.
	ErrNoSigner = errors.New("no signer configured: set an account key for the network or run `key import`")
)

// PassphraseFunc supplies the key store passphrase on demand.
type PassphraseFunc func() (string, error)

// Service manages the deployer key using a backing store.
type Service struct {
	store domain.KeyStore
	log   *zap.Logger
	now   func() time.Time
}

// New returns a signer service backed by the given store.
func New(s domain.KeyStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: s, log: log, now: time.Now}
}

// GenerateSigner creates a new key, saves it sealed with the passphrase,
// and returns the signer plus a short fingerprint of its address.
func (s *Service) GenerateSigner(passphrase string) (domain.Signer, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Signer{}, "", ErrWeakPassphrase
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return domain.Signer{}, "", err
	}
	return s.save(passphrase, domain.Signer{Key: key, Address: crypto.AddressOf(key)})
}

// ImportSigner stores an existing hex private key, e.g. one printed by Ganache.
func (s *Service) ImportSigner(passphrase, hexKey string) (domain.Signer, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Signer{}, "", ErrWeakPassphrase
	}
	key, err := crypto.ParsePrivateKey(hexKey)
	if err != nil {
		return domain.Signer{}, "", err
	}
	return s.save(passphrase, domain.Signer{Key: key, Address: crypto.AddressOf(key)})
}

// LoadSigner unseals the stored key.
func (s *Service) LoadSigner(passphrase string) (domain.Signer, error) {
	stored, err := s.store.LoadKey(passphrase)
	if err != nil {
		return domain.Signer{}, err
	}
	defer crypto.Wipe(stored.Private)

	key, err := crypto.KeyFromBytes(stored.Private)
	if err != nil {
		return domain.Signer{}, fmt.Errorf("decode stored key: %w", err)
	}
	addr := crypto.AddressOf(key)
	if addr != stored.Address {
		return domain.Signer{}, fmt.Errorf("stored key does not match recorded address %s", stored.Address.Hex())
	}
	return domain.Signer{Key: key, Address: addr}, nil
}

// Resolve returns the signer for a network. The first configured account key
// is used when present, mirroring Hardhat's accounts[0]; otherwise the key
// store is unlocked with the passphrase from ask.
func (s *Service) Resolve(accounts []string, ask PassphraseFunc) (domain.Signer, error) {
	if len(accounts) > 0 && accounts[0] != "" {
		key, err := crypto.ParsePrivateKey(accounts[0])
		if err != nil {
			return domain.Signer{}, fmt.Errorf("network account: %w", err)
		}
		signer := domain.Signer{Key: key, Address: crypto.AddressOf(key)}
		s.log.Debug("using configured account", zap.String("address", signer.Address.Hex()))
		return signer, nil
	}

	ok, err := s.store.HasKey()
	if err != nil {
		return domain.Signer{}, err
	}
	if !ok {
		return domain.Signer{}, ErrNoSigner
	}
	passphrase, err := ask()
	if err != nil {
		return domain.Signer{}, err
	}
	signer, err := s.LoadSigner(passphrase)
	if err != nil {
		return domain.Signer{}, err
	}
	s.log.Debug("using key store account", zap.String("address", signer.Address.Hex()))
	return signer, nil
}

func (s *Service) save(passphrase string, signer domain.Signer) (domain.Signer, domain.Fingerprint, error) {
	raw := crypto.KeyBytes(signer.Key)
	defer crypto.Wipe(raw)

	stored := domain.StoredKey{Address: signer.Address, Private: raw, Created: s.now().Unix()}
	if err := s.store.SaveKey(passphrase, stored); err != nil {
		return domain.Signer{}, "", err
	}
	s.log.Info("deployer key saved", zap.String("address", signer.Address.Hex()))
	return signer, domain.Fingerprint(crypto.Fingerprint(signer.Address)), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.SignerService.
var _ domain.SignerService = (*Service)(nil)
