package connector

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"supplychain/internal/domain"
	"supplychain/internal/wallet"
)

var (
	// ErrProviderAbsent is reported when no wallet provider is available.
	ErrProviderAbsent = errors.New("wallet provider not detected")
	// ErrUserRejected marks failures where the user declined account access.
	ErrUserRejected = errors.New("connection rejected")
	// ErrProvider marks any other failure reported by the provider.
	ErrProvider = errors.New("provider error")
)

// Error is a classified connection failure. Its message is the provider's
// own reason, unchanged; errors.Is matches both Kind and Cause.
type Error struct {
	Kind  error
	Cause error
}

func (e *Error) Error() string   { return e.Cause.Error() }
func (e *Error) Unwrap() []error { return []error{e.Kind, e.Cause} }

// Renderer receives every state the connector passes through.
type Renderer interface {
	Render(state domain.ConnectionState)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(domain.ConnectionState)

// Render calls f(state).
func (f RenderFunc) Render(state domain.ConnectionState) { f(state) }

// Service runs wallet connection attempts.
type Service struct {
	provider domain.WalletProvider
	render   Renderer
	log      *zap.Logger
}

// New returns a connector for provider. provider may be nil; render may be nil.
func New(provider domain.WalletProvider, render Renderer, log *zap.Logger) *Service {
	if render == nil {
		render = RenderFunc(func(domain.ConnectionState) {})
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, render: render, log: log}
}

// Connect performs one connection attempt and returns its final state.
func (s *Service) Connect(ctx context.Context) domain.ConnectionState {
	s.render.Render(domain.ConnectionState{Status: domain.Pending})

	state := s.attempt(ctx)
	if state.Status == domain.Connected {
		s.log.Info("wallet connected", zap.String("address", state.Address))
	} else {
		s.log.Warn("wallet connection failed", zap.Error(state.Err))
	}
	s.render.Render(state)
	return state
}

func (s *Service) attempt(ctx context.Context) domain.ConnectionState {
	if s.provider == nil {
		return failed(ErrProviderAbsent)
	}
	if _, err := s.provider.RequestAccounts(ctx); err != nil {
		return failed(classify(err))
	}
	addr, err := s.provider.SignerAddress(ctx)
	if err != nil {
		return failed(classify(err))
	}
	return domain.ConnectionState{Status: domain.Connected, Address: addr}
}

func failed(err error) domain.ConnectionState {
	return domain.ConnectionState{Status: domain.Failed, Err: err}
}

func classify(err error) error {
	if code, ok := wallet.ErrorCode(err); ok && code == wallet.CodeUserRejected {
		return &Error{Kind: ErrUserRejected, Cause: err}
	}
	if strings.Contains(strings.ToLower(err.Error()), "user rejected") {
		return &Error{Kind: ErrUserRejected, Cause: err}
	}
	return &Error{Kind: ErrProvider, Cause: err}
}

var _ domain.ConnectorService = (*Service)(nil)
