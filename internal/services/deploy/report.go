package deploy

import (
	"encoding/json"
	"fmt"
	"io"

	"supplychain/internal/domain"
)

// Report lists the contracts of a completed run in plan order.
type Report struct {
	Network   domain.NetworkName   `json:"network"`
	Contracts []domain.ContractRef `json:"contracts"`
}

// Address returns the deployed address for label.
func (r Report) Address(label domain.Label) (string, bool) {
	for _, c := range r.Contracts {
		if c.Label == label {
			return c.Address.Hex(), true
		}
	}
	return "", false
}

// Print writes one "<Label> deployed to: <address>" line per contract.
func (r Report) Print(w io.Writer) error {
	for _, c := range r.Contracts {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes the report as indented JSON.
func (r Report) PrintJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
