package experiment

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/cogarch/prw/datarecording"
	"github.com/cogarch/prw/monitoring"
	"github.com/cogarch/prw/race"
	"github.com/cogarch/prw/sim"
)

// TrialRow is the per-trial record written to the trials table.
type TrialRow struct {
	Trial        int
	ReactionTime int64
	Winner       string
}

// RunRow is the run-metadata record written to the runs table.
type RunRow struct {
	ID             string
	Threshold      float64
	NumTrials      int
	LeftIncrement  float64
	RightIncrement float64
	NoiseStdDev    float64
	StepCeiling    int64
	Seed           int64
}

// A Result holds the outcome of one experiment: the ordered reaction-time
// sequence, the per-trial winners, and the summary statistics. The sequence
// keeps trial order, although the order carries no meaning for the
// statistics.
type Result struct {
	ReactionTimes []int64
	Winners       []race.Category
	Summary       Summary

	// Seed is the seed the run actually used, so a run with Seed 0 in its
	// configuration can still be reproduced.
	Seed int64
}

// An Experiment runs many independent trials of the decision task and
// collects the reaction-time distribution. Use a Builder to create one.
type Experiment struct {
	id       string
	config   Config
	recorder datarecording.DataRecorder
	monitor  *monitoring.Monitor
}

// ID returns the ID of the experiment.
func (e *Experiment) ID() string {
	return e.id
}

// Config returns the configuration of the experiment.
func (e *Experiment) Config() Config {
	return e.config
}

// Monitor returns the monitor of the experiment. It is nil when monitoring is
// disabled.
func (e *Experiment) Monitor() *monitoring.Monitor {
	return e.monitor
}

// Run executes the configured number of independent trials and returns the
// collected distribution.
//
// Trials share no mutable state, so they run on a pool of workers. Each
// worker owns the engine, accumulator, and random sources of the trial it is
// running, and results are written into a slice indexed by trial number, so
// the sequence order does not depend on worker interleaving. The random
// source of each trial derives from the run seed and the trial index, which
// makes a seeded run reproducible regardless of how trials interleave.
//
// The first trial that exceeds the step ceiling aborts the run: a bogus
// reaction time is never included in the distribution, and no trial is
// silently re-attempted.
func (e *Experiment) Run() (Result, error) {
	err := e.config.Validate()
	if err != nil {
		return Result{}, err
	}

	seed := e.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var bar *monitoring.ProgressBar
	if e.monitor != nil {
		bar = e.monitor.CreateProgressBar(
			"Trials", uint64(e.config.NumTrials))
	}

	results := make([]race.TrialResult, e.config.NumTrials)
	errs := make([]error, e.config.NumTrials)

	trials := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < e.numWorkers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range trials {
				if bar != nil {
					bar.IncrementInProgress(1)
				}

				results[i], errs[i] = e.runTrial(i, seed)

				if bar != nil {
					bar.MoveInProgressToFinished(1)
				}
			}
		}()
	}

	for i := 0; i < e.config.NumTrials; i++ {
		trials <- i
	}
	close(trials)
	wg.Wait()

	if e.monitor != nil {
		e.monitor.CompleteProgressBar(bar)
	}

	for i := range errs {
		if errs[i] != nil {
			return Result{}, fmt.Errorf("trial %d: %w", i, errs[i])
		}
	}

	result := e.collect(results, seed)

	summary, err := Summarize(result.ReactionTimes)
	if err != nil {
		return Result{}, err
	}
	result.Summary = summary

	e.record(result)

	return result, nil
}

func (e *Experiment) numWorkers() int {
	if e.config.Workers > 0 {
		return e.config.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (e *Experiment) runTrial(i int, seed int64) (race.TrialResult, error) {
	// Two streams per trial, one per category, so draws stay independent.
	leftSampler := race.NewGaussianSampler(
		e.config.NoiseStdDev, seed+int64(i)*2)
	rightSampler := race.NewGaussianSampler(
		e.config.NoiseStdDev, seed+int64(i)*2+1)

	var hooks []sim.Hook
	if e.config.LogEvents {
		hooks = append(hooks, sim.NewEventLogger(log.Default()))
	}

	var registry race.ComponentRegistry
	if e.monitor != nil {
		registry = e.monitor
	}

	return race.RunTrial(
		fmt.Sprintf("%s.Trial[%d]", e.id, i),
		race.TrialParams{
			LeftSampler:  leftSampler,
			RightSampler: rightSampler,
			LeftBase:     e.config.LeftIncrement,
			RightBase:    e.config.RightIncrement,
			Threshold:    e.config.Threshold,
			StepCeiling:  e.config.StepCeiling,
			EngineHooks:  hooks,
			Registry:     registry,
		})
}

func (e *Experiment) collect(results []race.TrialResult, seed int64) Result {
	result := Result{
		ReactionTimes: make([]int64, len(results)),
		Winners:       make([]race.Category, len(results)),
		Seed:          seed,
	}

	for i, r := range results {
		result.ReactionTimes[i] = r.ReactionTime
		result.Winners[i] = r.Winner
	}

	return result
}

func (e *Experiment) record(result Result) {
	if e.recorder == nil {
		return
	}

	e.recorder.InsertData("runs", RunRow{
		ID:             e.id,
		Threshold:      e.config.Threshold,
		NumTrials:      e.config.NumTrials,
		LeftIncrement:  e.config.LeftIncrement,
		RightIncrement: e.config.RightIncrement,
		NoiseStdDev:    e.config.NoiseStdDev,
		StepCeiling:    e.config.StepCeiling,
		Seed:           result.Seed,
	})

	for i := range result.ReactionTimes {
		e.recorder.InsertData("trials", TrialRow{
			Trial:        i,
			ReactionTime: result.ReactionTimes[i],
			Winner:       result.Winners[i].Name(),
		})
	}

	e.recorder.Flush()
}

// Terminate releases the resources of the experiment.
func (e *Experiment) Terminate() {
	if e.recorder != nil {
		e.recorder.Close()
	}
}
