package types

// Label names a deployed contract in reports and logs, e.g. "UsersContract".
type Label string

// String returns the string form of the label.
func (l Label) String() string { return string(l) }

// NetworkName identifies a configured target network, e.g. "localhost".
type NetworkName string

// String returns the string form of the network name.
func (n NetworkName) String() string { return string(n) }

// Fingerprint is a short identifier for a signer presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
