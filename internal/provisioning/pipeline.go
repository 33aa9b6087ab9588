package provisioning

import (
	"errors"
	"fmt"
	"time"
)

// RunPhases executes all provisioning phases sequentially and stops at the
// first failure, which is returned as a *PhaseError.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting onboarding of %q with %d phases...", ctx.Customer, len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return &PhaseError{Phase: phase.Name(), Err: err}
		}

		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))
		LogPhaseStart(ctx.Observer, name)

		err := phase.Provision(ctx)
		ctx.Metrics.RecordPhase(phase.Name(), err == nil, time.Since(phaseStart))
		if err != nil {
			LogPhaseFailed(ctx.Observer, name, err)
			return &PhaseError{Phase: phase.Name(), Err: err}
		}

		LogPhaseComplete(ctx.Observer, name, time.Since(phaseStart))
	}

	ctx.Observer.Printf("Onboarding completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// Status is the overall outcome of a run.
type Status string

const (
	// StatusCompleted means every phase succeeded and nothing failed.
	StatusCompleted Status = "completed"
	// StatusCompletedWithErrors means the run reached the end but some
	// calls failed (individual invitations or the environment).
	StatusCompletedWithErrors Status = "completed_with_errors"
	// StatusAborted means a phase stopped the run after pre-flight.
	StatusAborted Status = "aborted"
	// StatusFatal means a pre-flight check failed.
	StatusFatal Status = "fatal"
)

// Result summarizes a run.
type Result struct {
	Customer    string
	Status      Status
	AbortedStep string
	Err         error
	State       *State
	Started     time.Time
	Finished    time.Time
}

// ExitCode returns the process exit code for the result. Only pre-flight
// failures are non-zero; every other outcome is communicated by the report.
func (r *Result) ExitCode() int {
	if r.Status == StatusFatal {
		return 1
	}
	return 0
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Run executes phases and classifies the outcome.
func Run(ctx *Context, phases []Phase) *Result {
	res := &Result{
		Customer: ctx.Customer,
		State:    ctx.State,
		Started:  time.Now(),
	}

	err := RunPhases(ctx, phases)
	res.Finished = time.Now()
	res.Err = err

	var (
		fatal    *FatalError
		degraded *DegradedError
		phaseErr *PhaseError
	)
	switch {
	case errors.As(err, &fatal):
		res.Status = StatusFatal
		res.AbortedStep = fatal.Phase
	case errors.As(err, &degraded):
		res.Status = StatusCompletedWithErrors
	case errors.As(err, &phaseErr):
		res.Status = StatusAborted
		res.AbortedStep = phaseErr.Phase
	case err != nil:
		res.Status = StatusAborted
	case !ctx.Failures.Empty():
		res.Status = StatusCompletedWithErrors
	default:
		res.Status = StatusCompleted
	}

	ctx.Metrics.RecordRun(ctx.Failures.Len(), res.Finished)
	return res
}
