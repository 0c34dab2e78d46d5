// Package crypto exposes the minimal key primitives used by the deployer.
//
// Contents
//
//   - secp256k1 key parsing, generation and address derivation (ParsePrivateKey,
//     GenerateKey, AddressOf, KeyBytes, KeyFromBytes)
//   - Account address validation (ParseAddress)
//   - Best-effort memory wiping for key material (Wipe, WipeKey)
//   - Short address fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Curve operations are delegated to go-ethereum's crypto package. Callers
// should treat returned key bytes as sensitive and Wipe them when done.
package crypto
