package funding

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"supplychain/internal/chain"
	"supplychain/internal/crypto"
	"supplychain/internal/domain"
)

// DefaultAmount is sent when the caller does not specify an amount.
const DefaultAmount = "1.0"

// Service validates funding requests and submits a single transfer.
type Service struct {
	funder domain.Funder
	log    *zap.Logger
}

// New returns a funding service sending through funder.
func New(funder domain.Funder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{funder: funder, log: log}
}

// Fund sends amountEther (DefaultAmount when empty) to the hex address to and
// returns the transaction hash. Nothing is sent if either input is invalid.
func (s *Service) Fund(ctx context.Context, to string, amountEther string) (common.Hash, error) {
	addr, err := crypto.ParseAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	if amountEther == "" {
		amountEther = DefaultAmount
	}
	wei, err := chain.ParseEther(amountEther)
	if err != nil {
		return common.Hash{}, err
	}
	if wei.Sign() == 0 {
		return common.Hash{}, fmt.Errorf("%w: amount must be positive", chain.ErrInvalidAmount)
	}

	hash, err := s.funder.Transfer(ctx, addr, wei)
	if err != nil {
		return hash, fmt.Errorf("fund %s: %w", addr.Hex(), err)
	}
	s.log.Info("account funded",
		zap.String("to", addr.Hex()),
		zap.String("wei", wei.String()),
		zap.String("tx", hash.Hex()),
	)
	return hash, nil
}

var _ domain.FundingService = (*Service)(nil)
