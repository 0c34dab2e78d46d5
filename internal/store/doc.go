// Package store provides file-based persistence for the deployer key.
//
// The key is serialised as JSON, sealed with a passphrase-derived key
// (scrypt + ChaCha20-Poly1305) and written atomically with mode 0600 under the
// configured home directory. Methods are concurrency-safe via internal locking.
//
// Deployed contract addresses are never persisted here; they exist only in the
// deploy report printed by the CLI.
package store
