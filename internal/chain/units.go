package chain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const etherDecimals = 18

// ErrInvalidAmount is returned by ParseEther for malformed or negative amounts.
var ErrInvalidAmount = errors.New("invalid ether amount")

// ParseEther converts a decimal ether amount such as "1.0" or "0.25" into wei.
// Fractions beyond 18 decimal places are rejected rather than rounded.
func ParseEther(v string) (*big.Int, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "-") || strings.HasPrefix(v, "+") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
	}
	whole, frac, _ := strings.Cut(v, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, v, etherDecimals)
	}
	digits := whole + frac + strings.Repeat("0", etherDecimals-len(frac))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
		}
	}
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, v)
	}
	return wei, nil
}
