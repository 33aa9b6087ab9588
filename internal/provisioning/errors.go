package provisioning

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingState is returned when a phase runs before the phase that
	// produces its inputs.
	ErrMissingState = errors.New("missing prerequisite state")

	// ErrNoInvitationsSucceeded is returned when a non-empty roster produced
	// no successful invitation.
	ErrNoInvitationsSucceeded = errors.New("no invitation succeeded")
)

// FatalError marks a pre-flight failure. Nothing was created and the
// process should exit non-zero.
type FatalError struct {
	Phase string
	Err   error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("pre-flight %s check failed: %v", e.Phase, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// DegradedError marks a failure that leaves the run complete but with
// errors. It is only returned by the final phase.
type DegradedError struct {
	Phase string
	Err   error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Phase, e.Err)
}

func (e *DegradedError) Unwrap() error {
	return e.Err
}

// PhaseError is returned by RunPhases and names the phase that stopped the run.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

func missingState(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingState, what)
}
