package race

import (
	"github.com/cogarch/prw/sim"
)

// A ComponentRegistry accepts components for external observation, such as
// state inspection through a web monitor.
type ComponentRegistry interface {
	RegisterComponent(c sim.Component)
}

// TrialParams bundles everything one trial needs. Trials are independent:
// nothing carries over from one trial to the next.
type TrialParams struct {
	LeftSampler  Sampler
	RightSampler Sampler
	LeftBase     float64
	RightBase    float64
	Threshold    float64
	StepCeiling  int64

	// EngineHooks are attached to the trial's engine before it runs. They
	// are mainly useful for logging the tick events of a trial.
	EngineHooks []sim.Hook

	// Registry, when set, receives the trial's accumulator before the trial
	// runs.
	Registry ComponentRegistry
}

// RunTrial runs one trial to completion on a fresh engine and returns its
// result. The accumulator starts with zeroed activations, ticks once per
// timestep until either activation crosses the threshold, and reports a
// NonTerminatingTrialError if the step ceiling is exceeded first.
func RunTrial(name string, p TrialParams) (TrialResult, error) {
	engine := sim.NewSerialEngine()

	for _, hook := range p.EngineHooks {
		engine.AcceptHook(hook)
	}

	accumulator := MakeAccumulatorBuilder().
		WithEngine(engine).
		WithSamplers(p.LeftSampler, p.RightSampler).
		WithBaseLevels(p.LeftBase, p.RightBase).
		WithThreshold(p.Threshold).
		WithStepCeiling(p.StepCeiling).
		Build(name)

	if p.Registry != nil {
		p.Registry.RegisterComponent(accumulator)
	}

	accumulator.TickLater()

	err := engine.Run()
	if err != nil {
		return TrialResult{}, err
	}

	engine.Finished()

	return accumulator.Result()
}
