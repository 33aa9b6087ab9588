package provisioning

import "github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Identity results (populated by identity phase)
	OwnerEmail string

	// Project results (populated by project, team and policy phases)
	ProjectName string
	ProjectID   string
	TeamID      string
	PolicyID    string

	// Invitation results (populated by invitations phase)
	Invitations *OutcomeSet

	// Environment results (populated by environment phase)
	EnvironmentName string
	EnvironmentID   string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		Invitations: &OutcomeSet{},
	}
}

// InviteOutcome is the result of inviting one user. Err is nil on success.
type InviteOutcome struct {
	Invitee roster.Invitee
	Err     error
}

// Succeeded reports whether the invitation was accepted by the API.
func (o InviteOutcome) Succeeded() bool {
	return o.Err == nil
}

// OutcomeSet holds one outcome per roster entry, in roster order.
type OutcomeSet struct {
	Outcomes []InviteOutcome
}

// Len returns the number of attempted invitations.
func (s *OutcomeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Outcomes)
}

// Succeeded returns the invitees whose invitation succeeded.
func (s *OutcomeSet) Succeeded() []roster.Invitee {
	if s == nil {
		return nil
	}
	var out []roster.Invitee
	for _, o := range s.Outcomes {
		if o.Succeeded() {
			out = append(out, o.Invitee)
		}
	}
	return out
}

// Failed returns the failed outcomes.
func (s *OutcomeSet) Failed() []InviteOutcome {
	if s == nil {
		return nil
	}
	var out []InviteOutcome
	for _, o := range s.Outcomes {
		if !o.Succeeded() {
			out = append(out, o)
		}
	}
	return out
}

// SuccessCount returns the number of successful invitations.
func (s *OutcomeSet) SuccessCount() int {
	return len(s.Succeeded())
}

// FailureCount returns the number of failed invitations.
func (s *OutcomeSet) FailureCount() int {
	return len(s.Failed())
}
