package provisioning

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// Phase names, also used as metric labels.
const (
	PhaseValidation   = "validation"
	PhaseConnectivity = "connectivity"
	PhaseIdentity     = "identity"
	PhaseProject      = "project"
	PhaseTeam         = "team"
	PhasePolicy       = "policy"
	PhaseInvitations  = "invitations"
	PhaseEnvironment  = "environment"
)

// DefaultPhases returns the onboarding phases in execution order.
func DefaultPhases() []Phase {
	return []Phase{
		NewValidationPhase(),
		NewConnectivityPhase(),
		NewIdentityPhase(),
		NewProjectPhase(),
		NewTeamPhase(),
		NewPolicyPhase(),
		NewInvitationPhase(),
		NewEnvironmentPhase(),
	}
}
