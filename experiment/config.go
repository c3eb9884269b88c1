// Package experiment orchestrates many independent trials of the perceptual
// decision task and aggregates their reaction times into a distribution.
package experiment

import (
	"fmt"
)

// Config holds all run-wide parameters of an experiment. A Config is a value:
// it is validated once before any trial runs and never mutated afterwards, so
// concurrent or repeated runs with different configurations cannot interfere.
type Config struct {
	// Threshold is the activation level that ends a trial once either
	// accumulator reaches it.
	Threshold float64

	// NumTrials is the number of independent trials to run.
	NumTrials int

	// LeftIncrement and RightIncrement are the base activation increments
	// per step for each category.
	LeftIncrement  float64
	RightIncrement float64

	// NoiseStdDev is the standard deviation of the Gaussian selection noise
	// added to each increment.
	NoiseStdDev float64

	// StepCeiling bounds the number of steps of one trial. A trial that
	// reaches the ceiling without crossing the threshold fails.
	StepCeiling int64

	// Seed seeds the per-trial random sources. 0 derives a seed from the
	// wall clock.
	Seed int64

	// Workers is the number of goroutines running trials. 0 uses one worker
	// per available CPU.
	Workers int

	// LogEvents logs every tick event of every trial. Only useful for
	// debugging small runs.
	LogEvents bool
}

// DefaultConfig returns the default experiment configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:      0.75,
		NumTrials:      200,
		LeftIncrement:  0.01,
		RightIncrement: 0.01,
		NoiseStdDev:    0.005,
		StepCeiling:    10000,
	}
}

// An InvalidConfigError reports a configuration that is rejected before any
// trial runs.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Validate checks the configuration eagerly.
func (c Config) Validate() error {
	if c.Threshold <= 0 {
		return &InvalidConfigError{"Threshold", "must be positive"}
	}

	if c.NumTrials <= 0 {
		return &InvalidConfigError{"NumTrials", "must be positive"}
	}

	if c.LeftIncrement <= 0 {
		return &InvalidConfigError{"LeftIncrement", "must be positive"}
	}

	if c.RightIncrement <= 0 {
		return &InvalidConfigError{"RightIncrement", "must be positive"}
	}

	if c.NoiseStdDev < 0 {
		return &InvalidConfigError{"NoiseStdDev", "must not be negative"}
	}

	if c.StepCeiling <= 0 {
		return &InvalidConfigError{"StepCeiling", "must be positive"}
	}

	if c.Workers < 0 {
		return &InvalidConfigError{"Workers", "must not be negative"}
	}

	return nil
}
