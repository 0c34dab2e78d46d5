// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (contract references, connection state, signer keys)
// and contracts (interfaces) only.
package domain
