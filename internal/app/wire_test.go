package app

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"supplychain/internal/domain"
	"supplychain/internal/services/connector"
	"supplychain/internal/services/deploy"
	"supplychain/internal/wallet"
)

func newTestWire(t *testing.T, cfg *Config) *Wire {
	t.Helper()
	w, err := NewWire(cfg, t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return w
}

func TestNewWire_NilConfig(t *testing.T) {
	_, err := NewWire(nil, t.TempDir(), nil)
	assert.Error(t, err)
}

func TestWire_PlanFollowsPipeline(t *testing.T) {
	cfg := DefaultConfig()
	plan, err := newTestWire(t, cfg).Plan()
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Len())

	cfg.Pipeline = deploy.PipelineCombined
	plan, err = newTestWire(t, cfg).Plan()
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Len())
}

func TestWire_ConnectorWithoutProvider(t *testing.T) {
	var buf bytes.Buffer
	svc, closeFn := newTestWire(t, DefaultConfig()).Connector(context.Background(), "", connector.NewTextRenderer(&buf))
	defer closeFn()

	got := svc.Connect(context.Background())
	assert.Equal(t, domain.Failed, got.Status)
	assert.ErrorIs(t, got.Err, connector.ErrProviderAbsent)
	assert.Equal(t, "⏳ Connecting...\n❌ Error: wallet provider not detected\n", buf.String())
}

func TestWire_ConnectorAgainstDevWallet(t *testing.T) {
	const addr = "0x9187cA97aA9A6A93a979D9745f6A0C45154FD7A7"

	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", wallet.NewDevWallet([]string{addr}, false)))
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		hs.Close()
		srv.Stop()
	})

	cfg := DefaultConfig()
	cfg.Wallet.ProviderURL = hs.URL

	var buf bytes.Buffer
	svc, closeFn := newTestWire(t, cfg).Connector(context.Background(), "", connector.NewTextRenderer(&buf))
	defer closeFn()

	got := svc.Connect(context.Background())
	require.Equal(t, domain.Connected, got.Status)
	assert.Equal(t, addr, got.Address)
	assert.Equal(t, "⏳ Connecting...\n✅ Connected Wallet: "+addr+"\n", buf.String())
}
