package types

// ConnectionStatus is the phase of a single wallet connection attempt.
type ConnectionStatus int

const (
	Pending ConnectionStatus = iota
	Connected
	Failed
)

// String returns a lower-case name for the status.
func (s ConnectionStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Connected:
		return "connected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ConnectionState is what the connector exposes to the interface.
// Address is set only when Connected, Err only when Failed.
type ConnectionState struct {
	Status  ConnectionStatus
	Address string
	Err     error
}

// Message returns the user-visible error text of a failed state.
func (s ConnectionState) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
