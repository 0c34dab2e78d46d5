package deploy

import (
	"errors"
	"fmt"

	"supplychain/internal/domain"
)

// Pipeline names accepted by PlanFor.
const (
	PipelineSupplyChain = "supplychain"
	PipelineCombined    = "combined"
)

// Contract labels of the supply chain plan.
const (
	LabelUsers    domain.Label = "UsersContract"
	LabelProducts domain.Label = "ProductsContract"
	LabelRouter   domain.Label = "SupplyChain"
)

// ErrInvalidPlan is wrapped by every plan validation failure.
var ErrInvalidPlan = errors.New("invalid deployment plan")

// Arg is one constructor argument: a literal, or the address of an earlier step.
type Arg struct {
	ref   domain.Label
	value any
}

// Lit passes v to the constructor as is.
func Lit(v any) Arg { return Arg{value: v} }

// Ref passes the address deployed by the step labelled label.
func Ref(label domain.Label) Arg { return Arg{ref: label} }

// IsRef reports whether the argument refers to another step.
func (a Arg) IsRef() bool { return a.ref != "" }

// Step deploys one artifact.
type Step struct {
	Label    domain.Label
	Artifact string
	Args     []Arg
}

// Plan is a validated, ordered list of steps.
type Plan struct {
	steps []Step
}

// NewPlan validates steps and returns them as a plan.
func NewPlan(steps ...Step) (Plan, error) {
	if len(steps) == 0 {
		return Plan{}, fmt.Errorf("%w: no steps", ErrInvalidPlan)
	}
	seen := make(map[domain.Label]bool, len(steps))
	for i, s := range steps {
		if s.Label == "" {
			return Plan{}, fmt.Errorf("%w: step %d has no label", ErrInvalidPlan, i)
		}
		if s.Artifact == "" {
			return Plan{}, fmt.Errorf("%w: step %s has no artifact", ErrInvalidPlan, s.Label)
		}
		if seen[s.Label] {
			return Plan{}, fmt.Errorf("%w: duplicate label %s", ErrInvalidPlan, s.Label)
		}
		for j, a := range s.Args {
			if a.IsRef() && !seen[a.ref] {
				return Plan{}, fmt.Errorf("%w: step %s arg %d refers to %s, which is not deployed before it",
					ErrInvalidPlan, s.Label, j, a.ref)
			}
		}
		seen[s.Label] = true
	}
	return Plan{steps: append([]Step(nil), steps...)}, nil
}

// Steps returns a copy of the plan's steps in execution order.
func (p Plan) Steps() []Step { return append([]Step(nil), p.steps...) }

// Len returns the number of steps.
func (p Plan) Len() int { return len(p.steps) }

// SupplyChainPlan deploys both registries and the router that links them.
func SupplyChainPlan() Plan {
	p, err := NewPlan(
		Step{Label: LabelUsers, Artifact: string(LabelUsers)},
		Step{Label: LabelProducts, Artifact: string(LabelProducts)},
		Step{Label: LabelRouter, Artifact: string(LabelRouter), Args: []Arg{Ref(LabelUsers), Ref(LabelProducts)}},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// CombinedPlan deploys a single contract initialised with a manufacturer.
func CombinedPlan(artifact, manufacturerName, contactEmail string) (Plan, error) {
	if artifact == "" {
		artifact = string(LabelRouter)
	}
	return NewPlan(Step{
		Label:    domain.Label(artifact),
		Artifact: artifact,
		Args:     []Arg{Lit(manufacturerName), Lit(contactEmail)},
	})
}

// Options selects and parameterises a built-in plan.
type Options struct {
	Pipeline         string
	Artifact         string
	ManufacturerName string
	ContactEmail     string
}

// PlanFor returns the built-in plan named by opts.Pipeline.
func PlanFor(opts Options) (Plan, error) {
	switch opts.Pipeline {
	case "", PipelineSupplyChain:
		return SupplyChainPlan(), nil
	case PipelineCombined:
		return CombinedPlan(opts.Artifact, opts.ManufacturerName, opts.ContactEmail)
	default:
		return Plan{}, fmt.Errorf("%w: unknown pipeline %q", ErrInvalidPlan, opts.Pipeline)
	}
}
