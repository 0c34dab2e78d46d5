package deploy

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"supplychain/internal/domain"
)

// StepError reports which step of a plan failed. Unwrap yields the cause
// unchanged so callers can still match node or artifact errors.
type StepError struct {
	Label domain.Label
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("deploy %s (step %d): %v", e.Label, e.Index+1, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Service executes deployment plans.
type Service struct {
	artifacts domain.ArtifactSource
	deployer  domain.ContractDeployer
	network   domain.NetworkName
	log       *zap.Logger
}

// New constructs a deploy Service.
func New(
	artifacts domain.ArtifactSource,
	deployer domain.ContractDeployer,
	network domain.NetworkName,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{artifacts: artifacts, deployer: deployer, network: network, log: log}
}

// Run deploys every step of plan in order.
//
// For each step:
//  1. Load the compiled artifact.
//  2. Resolve constructor arguments; references become the addresses of
//     steps already deployed in this run.
//  3. Send the creation and wait until it is mined.
//
// The first failing step aborts the run with a *StepError. Contracts deployed
// by earlier steps are not rolled back and are not part of the returned report.
func (s *Service) Run(ctx context.Context, plan Plan) (Report, error) {
	runLog := s.log.With(zap.String("run_id", uuid.NewString()), zap.String("network", s.network.String()))
	runLog.Info("deployment started", zap.Int("steps", plan.Len()))

	report := Report{Network: s.network}
	deployed := make(map[domain.Label]common.Address, plan.Len())

	for i, step := range plan.steps {
		stepLog := runLog.With(zap.String("step", step.Label.String()), zap.String("artifact", step.Artifact))

		ref, err := s.runStep(ctx, step, deployed)
		if err != nil {
			stepLog.Error("step failed", zap.Error(err))
			return Report{}, &StepError{Label: step.Label, Index: i, Err: err}
		}
		deployed[step.Label] = ref.Address
		report.Contracts = append(report.Contracts, ref)
		stepLog.Info("step confirmed",
			zap.String("address", ref.Address.Hex()),
			zap.String("tx", ref.TxHash.Hex()),
		)
	}

	runLog.Info("deployment finished")
	return report, nil
}

func (s *Service) runStep(ctx context.Context, step Step, deployed map[domain.Label]common.Address) (domain.ContractRef, error) {
	if err := ctx.Err(); err != nil {
		return domain.ContractRef{}, err
	}
	artifact, err := s.artifacts.LoadArtifact(step.Artifact)
	if err != nil {
		return domain.ContractRef{}, err
	}
	args, err := resolveArgs(step, deployed)
	if err != nil {
		return domain.ContractRef{}, err
	}
	addr, txHash, err := s.deployer.Deploy(ctx, artifact, args...)
	if err != nil {
		return domain.ContractRef{}, err
	}
	return domain.ContractRef{Label: step.Label, Address: addr, TxHash: txHash}, nil
}

func resolveArgs(step Step, deployed map[domain.Label]common.Address) ([]any, error) {
	out := make([]any, len(step.Args))
	for i, a := range step.Args {
		if !a.IsRef() {
			out[i] = a.value
			continue
		}
		addr, ok := deployed[a.ref]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not deployed yet", ErrInvalidPlan, a.ref)
		}
		out[i] = addr
	}
	return out, nil
}
