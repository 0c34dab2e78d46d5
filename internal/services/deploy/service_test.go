package deploy_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"supplychain/internal/domain"
	"supplychain/internal/services/deploy"
)

type deployCall struct {
	artifact string
	args     []any
}

// fakeDeployer hands out sequential addresses and records every call.
type fakeDeployer struct {
	calls  []deployCall
	failAt int // 1-based call number that fails; 0 never fails
	err    error
}

func (f *fakeDeployer) Deploy(_ context.Context, a domain.Artifact, args ...any) (common.Address, common.Hash, error) {
	f.calls = append(f.calls, deployCall{artifact: a.Name, args: args})
	n := len(f.calls)
	if n == f.failAt {
		return common.Address{}, common.Hash{}, f.err
	}
	return common.BigToAddress(big.NewInt(int64(0x1000 + n))), common.BigToHash(big.NewInt(int64(n))), nil
}

type fakeArtifacts struct{ missing string }

func (f fakeArtifacts) LoadArtifact(name string) (domain.Artifact, error) {
	if name == f.missing {
		return domain.Artifact{}, fmt.Errorf("load %s: %w", name, errNotFound)
	}
	return domain.Artifact{Name: name, Bytecode: []byte{0x00}}, nil
}

var errNotFound = errors.New("artifact not found")

func newService(t *testing.T, d *fakeDeployer, a fakeArtifacts) *deploy.Service {
	t.Helper()
	return deploy.New(a, d, "localhost", zaptest.NewLogger(t))
}

func TestRun_RouterReceivesRegistryAddresses(t *testing.T) {
	d := &fakeDeployer{}
	report, err := newService(t, d, fakeArtifacts{}).Run(context.Background(), deploy.SupplyChainPlan())
	require.NoError(t, err)
	require.Len(t, d.calls, 3)

	assert.Equal(t, "UsersContract", d.calls[0].artifact)
	assert.Empty(t, d.calls[0].args)
	assert.Equal(t, "ProductsContract", d.calls[1].artifact)
	assert.Empty(t, d.calls[1].args)
	assert.Equal(t, "SupplyChain", d.calls[2].artifact)

	users := report.Contracts[0].Address
	products := report.Contracts[1].Address
	require.Len(t, d.calls[2].args, 2)
	assert.Equal(t, users, d.calls[2].args[0], "users address must be constructor arg 0")
	assert.Equal(t, products, d.calls[2].args[1], "products address must be constructor arg 1")
	assert.NotEqual(t, users, products)
}

func TestRun_FirstFailureShortCircuits(t *testing.T) {
	cause := errors.New("insufficient funds for gas * price + value")
	d := &fakeDeployer{failAt: 1, err: cause}

	report, err := newService(t, d, fakeArtifacts{}).Run(context.Background(), deploy.SupplyChainPlan())
	require.Error(t, err)
	assert.Len(t, d.calls, 1, "later steps must never be invoked")
	assert.Empty(t, report.Contracts)

	assert.ErrorIs(t, err, cause, "underlying error must be preserved")
	var stepErr *deploy.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, deploy.LabelUsers, stepErr.Label)
	assert.Equal(t, 0, stepErr.Index)
	assert.Same(t, cause, errors.Unwrap(err), "cause is wrapped once, not rewritten")
	assert.Equal(t, "deploy UsersContract (step 1): "+cause.Error(), err.Error())
}

func TestRun_MiddleFailureStopsRouter(t *testing.T) {
	d := &fakeDeployer{failAt: 2, err: errors.New("nonce too low")}

	_, err := newService(t, d, fakeArtifacts{}).Run(context.Background(), deploy.SupplyChainPlan())
	require.Error(t, err)
	assert.Len(t, d.calls, 2)

	var stepErr *deploy.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, deploy.LabelProducts, stepErr.Label)
}

func TestRun_MissingArtifactNeverDeploys(t *testing.T) {
	d := &fakeDeployer{}
	_, err := newService(t, d, fakeArtifacts{missing: "UsersContract"}).Run(context.Background(), deploy.SupplyChainPlan())
	assert.ErrorIs(t, err, errNotFound)
	assert.Empty(t, d.calls)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &fakeDeployer{}
	_, err := newService(t, d, fakeArtifacts{}).Run(ctx, deploy.SupplyChainPlan())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.calls)
}

func TestRun_CombinedPlanPassesStrings(t *testing.T) {
	plan, err := deploy.PlanFor(deploy.Options{
		Pipeline:         deploy.PipelineCombined,
		ManufacturerName: "Acme Farms",
		ContactEmail:     "ops@acme.example",
	})
	require.NoError(t, err)

	d := &fakeDeployer{}
	report, err := newService(t, d, fakeArtifacts{}).Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, d.calls, 1)
	assert.Equal(t, "SupplyChain", d.calls[0].artifact)
	assert.Equal(t, []any{"Acme Farms", "ops@acme.example"}, d.calls[0].args)
	assert.Len(t, report.Contracts, 1)
}

func TestReport_Print(t *testing.T) {
	d := &fakeDeployer{}
	report, err := newService(t, d, fakeArtifacts{}).Run(context.Background(), deploy.SupplyChainPlan())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf))

	want := fmt.Sprintf("UsersContract deployed to: %s\nProductsContract deployed to: %s\nSupplyChain deployed to: %s\n",
		report.Contracts[0].Address.Hex(),
		report.Contracts[1].Address.Hex(),
		report.Contracts[2].Address.Hex(),
	)
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("report output mismatch (-want +got):\n%s", diff)
	}

	addr, ok := report.Address(deploy.LabelRouter)
	assert.True(t, ok)
	assert.Equal(t, report.Contracts[2].Address.Hex(), addr)
}
