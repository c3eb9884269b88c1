package race

import (
	"github.com/cogarch/prw/sim"
)

// An Accumulator holds the race between the two category activations for one
// trial. It is a ticking component: on every timestep it draws one noisy
// increment per category, adds it to that category's running total, and
// checks whether either total has reached the threshold.
//
// Activations never go below zero. If an increment would drive a total
// negative, the total is clamped at zero instead.
//
// When both totals cross the threshold in the same step with equal values,
// Left wins. The tie-break is deterministic so that trial outcomes are
// reproducible modulo the sampler's randomness.
type Accumulator struct {
	*sim.TickingComponent

	samplers  [2]Sampler
	baseLevel [2]float64
	threshold float64
	ceiling   int64

	steps      int64
	activation [2]float64

	result *TrialResult
	err    error
}

// AccumulatorBuilder can build accumulators.
type AccumulatorBuilder struct {
	engine       sim.Engine
	leftSampler  Sampler
	rightSampler Sampler
	leftBase     float64
	rightBase    float64
	threshold    float64
	ceiling      int64
}

// MakeAccumulatorBuilder creates a builder with default parameters.
func MakeAccumulatorBuilder() AccumulatorBuilder {
	return AccumulatorBuilder{
		threshold: 0.75,
		leftBase:  0.01,
		rightBase: 0.01,
		ceiling:   10000,
	}
}

// WithEngine sets the engine that drives the accumulator.
func (b AccumulatorBuilder) WithEngine(e sim.Engine) AccumulatorBuilder {
	b.engine = e
	return b
}

// WithSamplers sets the sampler used for each category.
func (b AccumulatorBuilder) WithSamplers(
	left, right Sampler,
) AccumulatorBuilder {
	b.leftSampler = left
	b.rightSampler = right
	return b
}

// WithBaseLevels sets the base increment level for each category.
func (b AccumulatorBuilder) WithBaseLevels(
	left, right float64,
) AccumulatorBuilder {
	b.leftBase = left
	b.rightBase = right
	return b
}

// WithThreshold sets the activation level that ends the trial.
func (b AccumulatorBuilder) WithThreshold(t float64) AccumulatorBuilder {
	b.threshold = t
	return b
}

// WithStepCeiling sets the maximum number of steps before the trial is
// reported as non-terminating.
func (b AccumulatorBuilder) WithStepCeiling(c int64) AccumulatorBuilder {
	b.ceiling = c
	return b
}

// Build creates the accumulator with zeroed activations.
func (b AccumulatorBuilder) Build(name string) *Accumulator {
	if b.engine == nil {
		panic("accumulator must have an engine")
	}

	if b.leftSampler == nil || b.rightSampler == nil {
		panic("accumulator must have a sampler for each category")
	}

	a := &Accumulator{
		samplers:  [2]Sampler{b.leftSampler, b.rightSampler},
		baseLevel: [2]float64{b.leftBase, b.rightBase},
		threshold: b.threshold,
		ceiling:   b.ceiling,
	}
	a.TickingComponent = sim.NewTickingComponent(name, b.engine, a)

	return a
}

// Tick advances the race by one timestep. It returns false once the trial
// has reached a terminal state, which stops the tick events.
func (a *Accumulator) Tick() bool {
	if a.result != nil || a.err != nil {
		return false
	}

	if a.steps >= a.ceiling {
		a.err = &NonTerminatingTrialError{Steps: sim.VTimeInStep(a.steps)}
		return false
	}

	a.steps++

	for c := Left; c <= Right; c++ {
		a.activation[c] += a.samplers[c].Sample(a.baseLevel[c])
		if a.activation[c] < 0 {
			a.activation[c] = 0
		}
	}

	if a.activation[Left] < a.threshold && a.activation[Right] < a.threshold {
		return true
	}

	winner := Left
	if a.activation[Right] > a.activation[Left] {
		winner = Right
	}

	a.result = &TrialResult{
		ID:           sim.GetIDGenerator().Generate(),
		ReactionTime: a.steps,
		Winner:       winner,
	}

	return false
}

// Done returns whether the trial has reached a terminal state, either by
// crossing the threshold or by exceeding the step ceiling.
func (a *Accumulator) Done() bool {
	return a.result != nil || a.err != nil
}

// Result returns the outcome of the trial. Calling Result before the trial
// has terminated is a programming error.
func (a *Accumulator) Result() (TrialResult, error) {
	if a.err != nil {
		return TrialResult{}, a.err
	}

	if a.result == nil {
		panic("trial has not terminated")
	}

	return *a.result, nil
}

// Activation returns the current running total for one category.
func (a *Accumulator) Activation(c Category) float64 {
	return a.activation[c]
}

// Steps returns the number of steps taken so far.
func (a *Accumulator) Steps() int64 {
	return a.steps
}
