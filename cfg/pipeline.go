package cfg

import "fmt"

// Transformation is the common signature of the grammar transformations.
type Transformation func(*Grammar, ...Option) (*Grammar, error)

// Names of the transformations, in the order they are usually applied.
const (
	StepProducing = "producing"
	StepReachable = "reachable"
	StepEpsilon   = "epsilon"
	StepChain     = "chain"
)

// DefaultPipeline lists all transformations in their canonical order.
var DefaultPipeline = []string{StepProducing, StepReachable, StepEpsilon, StepChain}

var transformations = map[string]Transformation{
	StepProducing: RemoveNonProducing,
	StepReachable: RemoveUnreachable,
	StepEpsilon:   RemoveEpsilons,
	StepChain:     RemoveChains,
}

// TransformationByName returns the transformation for one of the step
// names "producing", "reachable", "epsilon" and "chain".
func TransformationByName(name string) (Transformation, error) {
	t, ok := transformations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransformation, name)
	}
	return t, nil
}

// Stage is the outcome of one step of a pipeline.
type Stage struct {
	Step    string
	Grammar *Grammar
}

// Pipeline applies the named transformations to g, one after the other.
// It returns the grammar after every step. Options are passed to every
// transformation. An unknown step name fails before any transformation is run.
func Pipeline(g *Grammar, steps []string, opts ...Option) ([]Stage, error) {
	ts := make([]Transformation, len(steps))
	for i, step := range steps {
		t, err := TransformationByName(step)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	stages := make([]Stage, 0, len(steps))
	for i, t := range ts {
		next, err := t(g, opts...)
		if err != nil {
			return stages, fmt.Errorf("step %s: %w", steps[i], err)
		}
		tracer().Debugf("after step %s:\n%s", steps[i], next)
		stages = append(stages, Stage{Step: steps[i], Grammar: next})
		g = next
	}
	return stages, nil
}
