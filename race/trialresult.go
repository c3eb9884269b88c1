package race

import (
	"fmt"

	"github.com/cogarch/prw/sim"
)

// A TrialResult records the outcome of one completed trial. It is immutable
// once produced.
type TrialResult struct {
	// ID uniquely identifies the trial.
	ID string

	// ReactionTime is the number of timesteps elapsed until the threshold
	// was crossed, counting the crossing step. Always positive.
	ReactionTime int64

	// Winner is the category whose accumulator crossed the threshold, or won
	// the tie-break.
	Winner Category
}

// A NonTerminatingTrialError reports a trial that exceeded its step ceiling
// without either accumulator crossing the threshold. It usually indicates a
// misconfigured threshold or a degenerate sampler.
type NonTerminatingTrialError struct {
	// Steps is the number of steps taken before the trial was abandoned.
	Steps sim.VTimeInStep
}

func (e *NonTerminatingTrialError) Error() string {
	return fmt.Sprintf(
		"trial did not terminate within %d steps", e.Steps)
}
